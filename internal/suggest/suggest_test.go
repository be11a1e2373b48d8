package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/pyconv/internal/suggest"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"Print", "Print", 0},
		{"Prnt", "Print", 1},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, suggest.Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, suggest.Distance(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	kinds := []string{"Print", "Repr", "Raise", "TryExcept", "TryFinally"}

	got, ok := suggest.Closest("Prnt", kinds)
	assert.True(t, ok)
	assert.Equal(t, "Print", got)

	got, ok = suggest.Closest("tryexcept", kinds)
	assert.True(t, ok)
	assert.Equal(t, "TryExcept", got)

	_, ok = suggest.Closest("Lambda", kinds)
	assert.False(t, ok)

	_, ok = suggest.Closest("", kinds)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ` (did you mean "yaml"?)`, suggest.Hint("yamk", []string{"json", "yaml"}))
	assert.Empty(t, suggest.Hint("toml", []string{"json", "yaml"}))
}
