// Package freeze suspends X11 screen redraw for the lifetime of a Guard.
//
// A Conn is a dedicated connection to the X server. Conn.Freeze issues a
// server grab, which stops the server from processing every other client's
// requests: compositors and applications cannot draw a single frame until
// the grab is lifted by Guard.Release. Screenshot tools use this window to
// capture a stable image.
package freeze

import (
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Conn is an open display connection able to freeze the screen.
// It is not safe for concurrent use.
type Conn struct {
	x *xgb.Conn
}

// Connect opens a connection to the display server. An empty display name
// selects $DISPLAY, following X conventions.
func Connect(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to display %q: %w", displayName(display), err)
	}
	return &Conn{x: x}, nil
}

// displayName resolves the name used in error messages.
func displayName(display string) string {
	if display != "" {
		return display
	}
	return os.Getenv("DISPLAY")
}

// Vendor returns the server vendor string, e.g. "The X.Org Foundation".
func (c *Conn) Vendor() string {
	return xproto.Setup(c.x).Vendor
}

// ProtocolVersion returns the X protocol version the server speaks.
func (c *Conn) ProtocolVersion() (major, minor int) {
	setup := xproto.Setup(c.x)
	return int(setup.ProtocolMajorVersion), int(setup.ProtocolMinorVersion)
}

// ScreenSize returns the default screen dimensions in pixels.
func (c *Conn) ScreenSize() (width, height int) {
	screen := xproto.Setup(c.x).DefaultScreen(c.x)
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// Close terminates the connection. The X server drops a still-held grab when
// the owning connection dies, but callers must not lean on that: release the
// Guard first, then Close.
func (c *Conn) Close() {
	c.x.Close()
}

// suspend and resume are the wire operations behind Guard. Both are checked
// round-trips, so a dead or rejecting server reports instead of silently
// queueing.
func (c *Conn) suspend() error {
	if err := xproto.GrabServerChecked(c.x).Check(); err != nil {
		return fmt.Errorf("grab server: %w", err)
	}
	return nil
}

func (c *Conn) resume() error {
	if err := xproto.UngrabServerChecked(c.x).Check(); err != nil {
		return fmt.Errorf("ungrab server: %w", err)
	}
	return nil
}
