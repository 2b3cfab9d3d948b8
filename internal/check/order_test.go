package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// sides rebuilds the two inputs of a FieldOrderDiff rendering.
func sides(diff string) (actual, canonical []string) {
	if diff == "" {
		return nil, nil
	}
	for _, line := range strings.Split(diff, "\n") {
		prefix, name := line[:2], line[2:]
		switch prefix {
		case "  ":
			actual = append(actual, name)
			canonical = append(canonical, name)
		case "- ":
			actual = append(actual, name)
		case "+ ":
			canonical = append(canonical, name)
		}
	}
	return actual, canonical
}

func TestFieldOrderDiff(t *testing.T) {
	diff := FieldOrderDiff(
		[]string{"Title", "Keyword", "Home"},
		[]string{"Title", "Home", "Keyword"},
	)

	require.True(t, strings.HasPrefix(diff, "  Title\n"))
	actual, canonical := sides(diff)
	require.Equal(t, []string{"Title", "Keyword", "Home"}, actual)
	require.Equal(t, []string{"Title", "Home", "Keyword"}, canonical)
}

func TestFieldOrderDiff_Equal(t *testing.T) {
	diff := FieldOrderDiff([]string{"Name", "Games"}, []string{"Name", "Games"})
	require.Equal(t, "  Name\n  Games", diff)
	require.Empty(t, FieldOrderDiff(nil, nil))
}

func TestProperty_FieldOrderDiffReconstructsBothSides(t *testing.T) {
	names := []string{"File", "Title", "Home", "Media", "State", "Platform", "Keyword", "Code language", "Note"}

	rapid.Check(t, func(t *rapid.T) {
		canonical := rapid.SliceOfDistinct(rapid.SampledFrom(names), func(s string) string { return s }).Draw(t, "canonical")
		actual := rapid.Permutation(canonical).Draw(t, "actual")

		gotActual, gotCanonical := sides(FieldOrderDiff(actual, canonical))

		require.Equal(t, len(actual), len(gotActual))
		if len(actual) > 0 {
			require.Equal(t, actual, gotActual)
			require.Equal(t, canonical, gotCanonical)
		}
	})
}
