// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

import (
	"iter"

	"go4.org/mem"
)

// TermKind is the type of a scanned term.
type TermKind byte

// Constants defining the valid TermKind values.
const (
	StringTerm  TermKind = iota + 1 // quoted string
	LiteralTerm                     // number, true, false, or null
	ArrayTerm                       // [ ... ]
	ObjectTerm                      // { ... }
)

var termKindStr = [...]string{
	StringTerm:  "string",
	LiteralTerm: "literal",
	ArrayTerm:   "array",
	ObjectTerm:  "object",
}

func (k TermKind) String() string {
	if int(k) < len(termKindStr) && termKindStr[k] != "" {
		return termKindStr[k]
	}
	return "invalid term"
}

// A Term describes the kind and location of an undecoded JSON value.
//
// The span of a string term includes its quotation marks. The span of an
// array or object term includes its brackets or braces, and the spans of its
// children lie strictly within them.
type Term struct {
	Kind TermKind
	Span

	Escaped bool         // string contains escape sequences
	Elems   []Term       // elements of an array, in order
	Members []TermMember // members of an object, in order
}

// A TermMember is a single name-value pair of an object term.
type TermMember struct {
	Name  Term // always a StringTerm
	Value Term
}

// Stats summarize the structure of a scanned document.
type Stats struct {
	Terms    int // total number of terms, including object keys
	Strings  int // string terms, including object keys
	Literals int // number and bareword terms
	Arrays   int // array terms
	Objects  int // object terms
	MaxDepth int // maximum nesting depth of arrays and objects
}

// A Document is the result of scanning a JSON text without decoding it. The
// terms of a document can be decoded selectively.
type Document struct {
	text  string
	root  Term
	stats Stats
	opts  Options
}

// Scan scans a single JSON value from text with the default options, and
// returns a document describing its structure.  Scan reports the same
// syntax errors as Decode, except that string escape sequences are not
// checked until the string is decoded.
func Scan(text string) (*Document, error) { return (*Options)(nil).Scan(text) }

// Scan scans a single JSON value from text using the options in o.
// A nil *Options is equivalent to a zero Options.
func (o *Options) Scan(text string) (*Document, error) {
	d := newDecoder(text, o)
	doc := &Document{text: text}
	if o != nil {
		doc.opts = *o
	}
	d.stats = &doc.stats

	t, end, err := d.term(SkipSpace(text, 0), UnexpectedEOF)
	if err != nil {
		return nil, err
	}
	if end = SkipSpace(text, end); end < len(text) {
		return nil, d.fail(TrailingCharacters, end)
	}
	doc.root = t
	return doc, nil
}

// term scans the term starting at pos, which must not be whitespace. If the
// input ends at pos, term reports an error of kind eof.
func (d *decoder) term(pos int, eof ErrorKind) (Term, int, error) {
	if pos >= len(d.text) {
		return Term{}, pos, d.fail(eof, pos)
	}
	d.stats.Terms++
	switch c := classify(d.text[pos]); c {
	case classString:
		end, esc, err := d.scanString(pos)
		if err != nil {
			return Term{}, pos, err
		}
		d.stats.Strings++
		return Term{Kind: StringTerm, Span: Span{Pos: pos, End: end}, Escaped: esc}, end, nil

	case classNumber, classTrue, classFalse, classNull:
		var end int
		var err error
		if c == classNumber {
			end, err = d.scanNumber(pos)
		} else {
			end, err = d.scanBareword(pos, c)
		}
		if err != nil {
			return Term{}, pos, err
		}
		d.stats.Literals++
		return Term{Kind: LiteralTerm, Span: Span{Pos: pos, End: end}}, end, nil

	case classArray:
		return d.arrayTerm(pos)

	case classObject:
		return d.objectTerm(pos)
	}
	return Term{}, pos, d.fail(UnexpectedCharacter, pos)
}

// arrayTerm scans an array whose opening bracket is at pos.
func (d *decoder) arrayTerm(pos int) (Term, int, error) {
	if err := d.enter(pos); err != nil {
		return Term{}, pos, err
	}
	defer d.leave()
	d.stats.Arrays++

	text := d.text
	arr := Term{Kind: ArrayTerm, Span: Span{Pos: pos}}
	i := SkipSpace(text, pos+1)
	for i >= len(text) || text[i] != ']' {
		elt, next, err := d.term(i, UnterminatedArray)
		if err != nil {
			return Term{}, next, err
		}
		arr.Elems = append(arr.Elems, elt)

		i = SkipSpace(text, next)
		if i >= len(text) {
			return Term{}, i, d.fail(UnterminatedArray, i)
		} else if text[i] == ']' {
			break
		} else if text[i] != ',' {
			return Term{}, i, d.fail(UnexpectedCharacter, i)
		}
		i = SkipSpace(text, i+1)
		if d.strict && i < len(text) && text[i] == ']' {
			return Term{}, i, d.fail(UnexpectedCharacter, i)
		}
	}
	arr.End = i + 1
	return arr, arr.End, nil
}

// objectTerm scans an object whose opening brace is at pos.
func (d *decoder) objectTerm(pos int) (Term, int, error) {
	if err := d.enter(pos); err != nil {
		return Term{}, pos, err
	}
	defer d.leave()
	d.stats.Objects++

	text := d.text
	obj := Term{Kind: ObjectTerm, Span: Span{Pos: pos}}
	i := SkipSpace(text, pos+1)
	for i >= len(text) || text[i] != '}' {
		if i >= len(text) {
			return Term{}, i, d.fail(UnterminatedObject, i)
		} else if text[i] != '"' {
			return Term{}, i, d.fail(ExpectedQuotedKey, i)
		}
		name, next, err := d.term(i, UnterminatedObject)
		if err != nil {
			return Term{}, next, err
		}

		i = SkipSpace(text, next)
		if i >= len(text) {
			return Term{}, i, d.fail(UnterminatedObject, i)
		} else if text[i] != ':' {
			return Term{}, i, d.fail(ExpectedColon, i)
		}

		val, next, err := d.term(SkipSpace(text, i+1), UnterminatedObject)
		if err != nil {
			return Term{}, next, err
		}
		obj.Members = append(obj.Members, TermMember{Name: name, Value: val})

		i = SkipSpace(text, next)
		if i >= len(text) {
			return Term{}, i, d.fail(UnterminatedObject, i)
		} else if text[i] == '}' {
			break
		} else if text[i] != ',' {
			return Term{}, i, d.fail(ExpectedCommaOrBrace, i)
		}
		i = SkipSpace(text, i+1)
		if d.strict && i < len(text) && text[i] == '}' {
			return Term{}, i, d.fail(ExpectedQuotedKey, i)
		}
	}
	obj.End = i + 1
	return obj, obj.End, nil
}

// Root returns the top-level term of d.
func (d *Document) Root() Term { return d.root }

// Stats returns structural statistics collected while scanning d.
func (d *Document) Stats() Stats { return d.stats }

// Text returns the undecoded source text of t.
func (d *Document) Text(t Term) string { return d.text[t.Pos:t.End] }

// Raw returns a read-only view of the source text of t.
func (d *Document) Raw(t Term) mem.RO { return mem.S(d.Text(t)) }

// Location returns the complete location of t in the source text.
func (d *Document) Location(t Term) Location { return locate(d.text, t.Span) }

// Value decodes t and all its children into a Value.
func (d *Document) Value(t Term) (Value, error) {
	dec := newDecoder(d.text, &d.opts)
	return dec.materialize(t)
}

// Key decodes the name of the object member m.
func (d *Document) Key(m TermMember) (string, error) {
	return newDecoder(d.text, &d.opts).stringValue(m.Name.Pos, m.Name.End, m.Name.Escaped)
}

// Find returns the value of the last member of the object term t whose name
// is key, and reports whether such a member was found. Find does not decode
// any names that do not contain escape sequences.
func (d *Document) Find(t Term, key string) (Term, bool) {
	for i := len(t.Members) - 1; i >= 0; i-- {
		m := t.Members[i]
		if !m.Name.Escaped {
			if d.text[m.Name.Pos+1:m.Name.End-1] == key {
				return m.Value, true
			}
		} else if name, err := d.Key(m); err == nil && name == key {
			return m.Value, true
		}
	}
	return Term{}, false
}

// Elements returns an iterator over the elements of the array term t.
func (d *Document) Elements(t Term) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for _, elt := range t.Elems {
			if !yield(elt) {
				return
			}
		}
	}
}

// Members returns an iterator over the decoded names and values of the
// members of the object term t, in source order. A name whose escape
// sequences cannot be decoded is reported as its raw text, without the
// quotation marks.
func (d *Document) Members(t Term) iter.Seq2[string, Term] {
	return func(yield func(string, Term) bool) {
		for _, m := range t.Members {
			name, err := d.Key(m)
			if err != nil {
				name = d.text[m.Name.Pos+1 : m.Name.End-1]
			}
			if !yield(name, m.Value) {
				return
			}
		}
	}
}

// materialize decodes the value described by t.
func (d *decoder) materialize(t Term) (Value, error) {
	switch t.Kind {
	case StringTerm:
		s, err := d.stringValue(t.Pos, t.End, t.Escaped)
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case LiteralTerm:
		switch d.text[t.Pos] {
		case 't':
			return Bool(true), nil
		case 'f':
			return Bool(false), nil
		case 'n':
			return Null{}, nil
		}
		f, err := d.numberValue(t.Pos, t.End)
		if err != nil {
			return nil, err
		}
		return Number(f), nil

	case ArrayTerm:
		arr := make(Array, len(t.Elems))
		for i, elt := range t.Elems {
			v, err := d.materialize(elt)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil

	case ObjectTerm:
		obj := &Object{members: make([]Member, 0, len(t.Members))}
		for _, m := range t.Members {
			key, err := d.stringValue(m.Name.Pos, m.Name.End, m.Name.Escaped)
			if err != nil {
				return nil, err
			}
			v, err := d.materialize(m.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	}
	return nil, d.fail(UnexpectedCharacter, t.Pos)
}
