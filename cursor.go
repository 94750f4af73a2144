// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

// SkipSpace returns the offset of the first byte of text at or after pos that
// is not JSON whitespace (space, tab, newline, carriage return). If no such
// byte exists, SkipSpace returns len(text). SkipSpace is idempotent.
func SkipSpace(text string, pos int) int {
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}
	return pos
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// A decoder holds the state of a single decode or scan call. Each call owns
// its own decoder; the scanners communicate the extent of what they consumed
// by returning the offset just past it.
type decoder struct {
	text     string
	strict   bool
	maxDepth int // negative for unlimited
	depth    int
	stats    *Stats // if non-nil, record scan statistics
}

func newDecoder(text string, o *Options) *decoder {
	return &decoder{text: text, strict: o.strict(), maxDepth: o.maxDepth()}
}

func (d *decoder) fail(kind ErrorKind, pos int) error { return newError(d.text, kind, pos, nil) }

func (d *decoder) failCause(kind ErrorKind, pos int, cause error) error {
	return newError(d.text, kind, pos, cause)
}

// enter records entry into the container whose opening delimiter is at pos.
// Each successful call to enter must be paired with a call to leave.
func (d *decoder) enter(pos int) error {
	d.depth++
	if d.maxDepth >= 0 && d.depth > d.maxDepth {
		return d.fail(DepthExceeded, pos)
	}
	if d.stats != nil && d.depth > d.stats.MaxDepth {
		d.stats.MaxDepth = d.depth
	}
	return nil
}

func (d *decoder) leave() { d.depth-- }
