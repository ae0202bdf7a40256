package ssh

import (
	"strings"
	"unicode"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// DefaultTerm is used when the client sends no TERM or one we do not trust.
const DefaultTerm = "xterm-256color"

// maxSlotLen bounds save slot names derived from SSH user names.
const maxSlotLen = 32

// allowedTerms lists the TERM values handed to terminfo. Anything else
// falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// TermFromEnviron picks TERM out of a session environment.
func TermFromEnviron(environ []string) string {
	for _, kv := range environ {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return DefaultTerm
}

// SlotName derives the save slot for a session from the client's
// authenticated public key, so a user name alone never reaches someone
// else's save. The cleaned user name is kept as a readable prefix: control
// and whitespace runes are dropped and it is capped at maxSlotLen bytes
// without splitting a rune. ok is false when there is no key.
func SlotName(user string, key gossh.PublicKey) (slot string, ok bool) {
	if key == nil {
		return "", false
	}
	var b strings.Builder
	for _, r := range user {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxSlotLen {
			break
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" {
		name = "anonymous"
	}
	return "ssh:" + name + ":" + xssh.FingerprintSHA256(key), true
}
