// Package ssh adapts gliderlabs/ssh sessions to tcell terminals.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of one SSH channel. Each connected
// client gets its own SessionTty and tcell.Screen.
type SessionTty struct {
	rw     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
	once   sync.Once
}

// NewSessionTty wraps rw, usually a gssh.Session, as a tcell Tty. pty holds
// the initial window size; winCh delivers later resizes.
func NewSessionTty(rw io.ReadWriteCloser, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		rw:     rw,
		window: pty.Window,
		winCh:  winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain are no-ops; the SSH channel is opened and flushed
// by the server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains the window channel until it is closed.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go t.watch()
	})
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
