// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package qjson

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool { return s.Pos <= o.Pos && o.End <= s.End }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// lineColAt reports the line and column of offset pos in text.  Offsets past
// the end of text are clamped to the end.
func lineColAt(text string, pos int) LineCol {
	pos = min(pos, len(text))
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if text[i] == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}

// locate returns the complete location of span within text.
func locate(text string, span Span) Location {
	return Location{
		Span:  span,
		First: lineColAt(text, span.Pos),
		Last:  lineColAt(text, span.End),
	}
}
