package keyboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorNamesOrder(t *testing.T) {
	require.Equal(t,
		[]string{"red", "green", "yellow", "blue", "orange", "purple", "white"},
		ColorNames())
}

func TestColorFromName(t *testing.T) {
	for _, name := range ColorNames() {
		c, err := ColorFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, c.String())
	}

	_, err := ColorFromName("magenta")
	require.Error(t, err)
	require.Contains(t, err.Error(), "magenta")
}

func TestColorString(t *testing.T) {
	require.Equal(t, "red", Red.String())
	require.Equal(t, "white", White.String())
	require.Equal(t, "unknown", Color(0).String())
	require.Equal(t, "unknown", Color(8).String())
}
