package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil input", input: nil, want: nil},
		{name: "only blanks", input: []string{"", "  "}, want: nil},
		{name: "trims and keeps order", input: []string{" b ", "a"}, want: []string{"b", "a"}},
		{name: "drops duplicates after trimming", input: []string{"k1:9092", " k1:9092", "k2:9092"}, want: []string{"k1:9092", "k2:9092"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Run("comma separated env value", func(t *testing.T) {
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, SplitList([]string{"k1:9092, k2:9092"}, ","))
	})

	t.Run("yaml list with a duplicate", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitList([]string{"a", "b", "a"}, ","))
	})

	t.Run("mixed", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, SplitList([]string{"a,b", " c ", ","}, ","))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, SplitList(nil, ","))
	})
}
