// Package suggest finds the closest known name to a misspelled one.
package suggest

import "strings"

// Distance returns the Levenshtein edit distance between a and b, counting
// single-rune insertions, deletions and substitutions. It keeps one column
// of the DP table, so space is O(len(a)).
func Distance(a, b string) int {
	s1 := []rune(a)
	s2 := []rune(b)

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	column := make([]int, len(s1)+1)
	for i := range column {
		column[i] = i
	}

	for col, r2 := range s2 {
		column[0] = col + 1
		diag := col

		for row, r1 := range s1 {
			prev := column[row+1]

			cost := 1
			if r1 == r2 {
				cost = 0
			}

			column[row+1] = min(column[row+1]+1, column[row]+1, diag+cost)
			diag = prev
		}
	}

	return column[len(s1)]
}

// Closest returns the candidate nearest to name. Matching ignores case, and
// a candidate only qualifies within a third of the name's length (at least
// one edit) so unrelated names are never proposed.
func Closest(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}

	lower := strings.ToLower(name)
	limit := max(len([]rune(name))/3, 1)

	best, bestDist := "", limit+1

	for _, c := range candidates {
		d := Distance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

// Hint renders Closest as a ` (did you mean "X"?)` suffix, or "".
func Hint(name string, candidates []string) string {
	best, ok := Closest(name, candidates)
	if !ok {
		return ""
	}

	return ` (did you mean "` + best + `"?)`
}
