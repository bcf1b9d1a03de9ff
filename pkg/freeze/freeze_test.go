package freeze

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_BadDisplayName(t *testing.T) {
	_, err := Connect("not-a-display")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-display")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, ":7", displayName(":7"))

	t.Setenv("DISPLAY", ":42")
	assert.Equal(t, ":42", displayName(""))
}

// TestConnect_RealDisplay only runs where an X server is reachable. It never
// grabs; probing must not disturb the session.
func TestConnect_RealDisplay(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("DISPLAY not set")
	}

	conn, err := Connect("")
	require.NoError(t, err)
	defer conn.Close()

	major, _ := conn.ProtocolVersion()
	assert.Equal(t, 11, major)

	w, h := conn.ScreenSize()
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
}
