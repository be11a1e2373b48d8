// Package report renders batch results and tree diffs for terminals.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/pyconv/internal/batch"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treedump"
)

const (
	statusOK     = "ok"
	statusCached = "cached"

	durationPrecision = time.Microsecond
)

// Options control rendering.
type Options struct {
	// Color enables ANSI colors regardless of the terminal.
	Color bool
	// Rules appends a table of rule applications.
	Rules bool
	// Errors appends the error message of each failed document.
	Errors bool
}

type palette struct {
	ok, fail, warn, info *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		info: color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.ok, p.fail, p.warn, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	return tbl
}

// WriteSummary writes one row per document followed by batch totals.
func WriteSummary(w io.Writer, results []batch.Result, opts Options) error {
	pal := newPalette(opts.Color)
	sum := batch.Summarize(results)

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"File", "Status", "Nodes", "Rules", "In", "Out", "Time"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	for _, res := range results {
		tbl.AppendRow(table.Row{
			res.Name,
			status(pal, res),
			res.Nodes,
			res.Stats.RuleApplications(),
			humanize.Bytes(uint64(max(res.InputBytes, 0))),
			humanize.Bytes(uint64(max(res.OutputBytes, 0))),
			res.Duration.Round(durationPrecision).String(),
		})
	}

	totals := fmt.Sprintf("%d ok", sum.Files-sum.Failed)
	if sum.Failed > 0 {
		totals += ", " + pal.fail.Sprintf("%d failed", sum.Failed)
	}

	if sum.Cached > 0 {
		totals += fmt.Sprintf(", %d cached", sum.Cached)
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d files", sum.Files),
		totals,
		sum.Nodes,
		sum.Stats.RuleApplications(),
		humanize.Bytes(uint64(max(sum.InputBytes, 0))),
		humanize.Bytes(uint64(max(sum.OutputBytes, 0))),
		sum.Duration.Round(durationPrecision).String(),
	})

	tbl.Render()

	if opts.Rules && len(sum.Stats.Rules) > 0 {
		_, err := fmt.Fprintln(w)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		writeRules(w, sum.Stats)
	}

	if opts.Errors && sum.Failed > 0 {
		err := writeErrors(w, pal, results)
		if err != nil {
			return err
		}
	}

	return nil
}

func status(pal palette, res batch.Result) string {
	switch {
	case res.Err != nil:
		return pal.fail.Sprint(convert.Class(res.Err))
	case res.Cached:
		return pal.info.Sprint(statusCached)
	default:
		return pal.ok.Sprint(statusOK)
	}
}

// writeRules lists specific-rule applications, most frequent first.
func writeRules(w io.Writer, stats convert.Stats) {
	type ruleCount struct {
		name  string
		count int
	}

	counts := make([]ruleCount, 0, len(stats.Rules))
	for name, n := range stats.Rules {
		counts = append(counts, ruleCount{name, n})
	}

	slices.SortFunc(counts, func(a, b ruleCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Rule", "Applications"})
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	for _, rc := range counts {
		tbl.AppendRow(table.Row{rc.name, rc.count})
	}

	tbl.Render()
}

func writeErrors(w io.Writer, pal palette, results []batch.Result) error {
	_, err := fmt.Fprintln(w, "\nErrors:")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, res := range results {
		if res.Err == nil {
			continue
		}

		_, err = pal.fail.Fprintf(w, "  - %s: %v\n", res.Name, res.Err)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

// WriteDiff writes a dump diff, coloring inserted and deleted lines, and a
// one-line change count.
func WriteDiff(w io.Writer, delta *treedump.Delta, opts Options) error {
	pal := newPalette(opts.Color)

	for _, l := range delta.Lines {
		line := l.Op.Prefix() + l.Text

		var err error

		switch l.Op {
		case treedump.OpInsert:
			_, err = pal.ok.Fprintln(w, line)
		case treedump.OpDelete:
			_, err = pal.fail.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}

		if err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	_, err := pal.warn.Fprintf(w, "%s added, %s removed\n",
		plural(delta.Added, "line"), plural(delta.Removed, "line"))
	if err != nil {
		return fmt.Errorf("write diff: %w", err)
	}

	return nil
}

// WriteViolations writes schema violations for one document. It reports
// whether the document was valid.
func WriteViolations(w io.Writer, name string, violations []string, opts Options) (bool, error) {
	pal := newPalette(opts.Color)

	if len(violations) == 0 {
		_, err := pal.ok.Fprintf(w, "%s: valid\n", name)
		if err != nil {
			return true, fmt.Errorf("write report: %w", err)
		}

		return true, nil
	}

	_, err := pal.fail.Fprintf(w, "%s: %s\n", name, plural(len(violations), "violation"))
	if err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}

	for _, v := range violations {
		_, err = fmt.Fprintf(w, "  - %s\n", v)
		if err != nil {
			return false, fmt.Errorf("write report: %w", err)
		}
	}

	return false, nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
