// Package gamelog holds the player-facing message log.
package gamelog

import "fmt"

// Log is an append-only, ordered list of messages about player-caused
// events. The zero value is ready to use.
type Log struct {
	entries []string
}

// Add appends one message.
func (l *Log) Add(msg string) {
	l.entries = append(l.entries, msg)
}

// Addf formats and appends one message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns a copy of all messages, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Last returns up to n of the newest messages, oldest first.
func (l *Log) Last(n int) []string {
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	return append([]string(nil), l.entries[start:]...)
}

// Len returns the number of messages.
func (l *Log) Len() int { return len(l.entries) }
