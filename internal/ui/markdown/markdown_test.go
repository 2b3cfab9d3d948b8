package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_Styles(t *testing.T) {
	for _, style := range []string{"", "auto", "dark", "light", "notty"} {
		r, err := New(style, 60)
		require.NoError(t, err, style)
		require.Equal(t, 60, r.Width())
	}

	_, err := New("sepia", 60)
	require.Error(t, err)
}

func TestNew_DefaultWidth(t *testing.T) {
	r, err := New("notty", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, r.Width())
}

func TestRender(t *testing.T) {
	r, err := New("dark", 80)
	require.NoError(t, err)

	out, err := r.Render("# Licenses\n\n- MIT\n- zlib\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Licenses")
	require.Contains(t, plain, "MIT")
	require.Contains(t, plain, "zlib")
}
