package freeze

import "sync"

// server is the part of Conn the guard drives; tests substitute a
// recording fake.
type server interface {
	suspend() error
	resume() error
}

// Guard represents an active screen freeze. It must be released exactly once
// on every path that exits the program; relying on connection teardown races
// against process death.
type Guard struct {
	srv  server
	mu   sync.Mutex
	held bool
}

// Freeze suspends redraw and returns the Guard holding the grab. When the
// server rejects the grab or is unreachable no Guard is created and nothing
// needs releasing.
func (c *Conn) Freeze() (*Guard, error) {
	return newGuard(c)
}

func newGuard(s server) (*Guard, error) {
	if err := s.suspend(); err != nil {
		return nil, err
	}
	return &Guard{srv: s, held: true}, nil
}

// Release resumes redraw. Only the first call acts; later calls return nil
// without touching the display, so Release is safe to repeat on abnormal
// unwind paths. A resume failure is returned for logging, but the guard
// still counts as released and will not try again.
func (g *Guard) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.held {
		return nil
	}
	g.held = false
	return g.srv.resume()
}

// Held reports whether the guard still holds the grab.
func (g *Guard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}
