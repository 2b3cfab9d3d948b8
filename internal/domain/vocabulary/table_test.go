package vocabulary

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable("platforms", "Windows", "Linux", "macOS")
	require.NoError(t, err)
	require.Equal(t, "platforms", table.Name())
	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"Windows", "Linux", "macOS"}, table.Values())
}

func TestNewTable_Duplicate(t *testing.T) {
	_, err := NewTable("platforms", "Windows", "Linux", "Windows")
	require.ErrorIs(t, err, ErrDuplicateValue)
	require.Contains(t, err.Error(), `"Windows"`)
}

func TestNewTable_Empty(t *testing.T) {
	_, err := NewTable("platforms", "Windows", "")
	require.ErrorIs(t, err, ErrEmptyValue)
	require.Contains(t, err.Error(), "platforms[1]")
}

func TestTable_ValuesIsCopy(t *testing.T) {
	table, err := NewTable("t", "a", "b")
	require.NoError(t, err)

	values := table.Values()
	values[0] = "z"

	require.Equal(t, []string{"a", "b"}, table.Values())
}

func TestTable_InputIsCopied(t *testing.T) {
	input := []string{"a", "b"}
	table, err := NewTable("t", input...)
	require.NoError(t, err)

	input[0] = "z"

	require.True(t, table.Contains("a"))
	require.False(t, table.Contains("z"))
}

func TestTable_Rank(t *testing.T) {
	table, err := NewTable("t", "a", "b", "c")
	require.NoError(t, err)

	r, ok := table.Rank("c")
	require.True(t, ok)
	require.Equal(t, 2, r)

	_, ok = table.Rank("d")
	require.False(t, ok)
}

func TestTable_ContainsIsCaseSensitive(t *testing.T) {
	table, err := NewTable("t", "SDL2")
	require.NoError(t, err)
	require.True(t, table.Contains("SDL2"))
	require.False(t, table.Contains("sdl2"))
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	require.False(t, table.Contains("a"))
	require.Equal(t, 0, table.Len())
	require.Nil(t, table.Values())
	_, ok := table.Rank("a")
	require.False(t, ok)
}

func TestTable_Sort(t *testing.T) {
	table, err := NewTable("platforms", "Windows", "Linux", "macOS", "Android", "iOS", "Web")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"already ordered", []string{"Windows", "Linux"}, []string{"Windows", "Linux"}},
		{"reversed", []string{"Web", "iOS", "Windows"}, []string{"Windows", "iOS", "Web"}},
		{"unknown last in input order", []string{"Haiku", "Linux", "BeOS", "Windows"}, []string{"Windows", "Linux", "Haiku", "BeOS"}},
		{"empty", []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := slices.Clone(tt.input)
			require.Equal(t, tt.want, table.Sort(tt.input))
			require.Equal(t, input, tt.input, "Sort must not modify its input")
		})
	}

	require.Equal(t, []string{}, table.Sort(nil))
}

func TestTable_IsSubsequenceOf(t *testing.T) {
	parent, err := NewTable("parent", "a", "b", "c", "d")
	require.NoError(t, err)

	ordered, _ := NewTable("ordered", "a", "c", "d")
	require.True(t, ordered.IsSubsequenceOf(parent))

	reordered, _ := NewTable("reordered", "c", "a")
	require.False(t, reordered.IsSubsequenceOf(parent))

	foreign, _ := NewTable("foreign", "a", "x")
	require.False(t, foreign.IsSubsequenceOf(parent))

	empty, _ := NewTable("empty")
	require.True(t, empty.IsSubsequenceOf(parent))
}

func TestTable_IsInCanonicalOrder(t *testing.T) {
	table, err := NewTable("t", "a", "b", "c")
	require.NoError(t, err)

	require.True(t, table.IsInCanonicalOrder([]string{"a", "c"}))
	require.True(t, table.IsInCanonicalOrder([]string{"a", "unknown", "b"}))
	require.False(t, table.IsInCanonicalOrder([]string{"b", "a"}))
	require.False(t, table.IsInCanonicalOrder([]string{"a", "a"}))
}
