// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

// Decode decodes a single JSON value from text, optionally surrounded by
// whitespace, using the default lenient options.  In case of error, the
// concrete type of the error is *DecodeError.
//
// Strings without escape sequences share storage with text.
func Decode(text string) (Value, error) { return (*Options)(nil).Decode(text) }

// DecodeBytes decodes a single JSON value from data. It is equivalent to
// Decode(string(data)).
func DecodeBytes(data []byte) (Value, error) { return Decode(string(data)) }

// Decode decodes a single JSON value from text using the options in o.  A nil
// *Options is equivalent to a zero Options.
func (o *Options) Decode(text string) (Value, error) {
	d := newDecoder(text, o)
	v, end, err := d.value(SkipSpace(text, 0), UnexpectedEOF)
	if err != nil {
		return nil, err
	}
	if end = SkipSpace(text, end); end < len(text) {
		return nil, d.fail(TrailingCharacters, end)
	}
	return v, nil
}

// value decodes the value starting at pos, which must not be whitespace.  If
// the input ends at pos, value reports an error of kind eof.  It returns the
// value and the offset just past its end.
func (d *decoder) value(pos int, eof ErrorKind) (Value, int, error) {
	if pos >= len(d.text) {
		return nil, pos, d.fail(eof, pos)
	}
	switch c := classify(d.text[pos]); c {
	case classString:
		end, esc, err := d.scanString(pos)
		if err != nil {
			return nil, pos, err
		}
		s, err := d.stringValue(pos, end, esc)
		if err != nil {
			return nil, pos, err
		}
		return String(s), end, nil

	case classNumber:
		end, err := d.scanNumber(pos)
		if err != nil {
			return nil, pos, err
		}
		f, err := d.numberValue(pos, end)
		if err != nil {
			return nil, pos, err
		}
		return Number(f), end, nil

	case classTrue, classFalse, classNull:
		end, err := d.scanBareword(pos, c)
		if err != nil {
			return nil, pos, err
		}
		switch c {
		case classTrue:
			return Bool(true), end, nil
		case classFalse:
			return Bool(false), end, nil
		}
		return Null{}, end, nil

	case classArray:
		return d.array(pos)

	case classObject:
		return d.object(pos)
	}
	return nil, pos, d.fail(UnexpectedCharacter, pos)
}

// array decodes an array whose opening bracket is at pos.
func (d *decoder) array(pos int) (Value, int, error) {
	if err := d.enter(pos); err != nil {
		return nil, pos, err
	}
	defer d.leave()

	text := d.text
	arr := Array{}
	i := SkipSpace(text, pos+1)
	if i < len(text) && text[i] == ']' {
		return arr, i + 1, nil
	}
	for {
		v, next, err := d.value(i, UnterminatedArray)
		if err != nil {
			return nil, next, err
		}
		arr = append(arr, v)

		i = SkipSpace(text, next)
		if i >= len(text) {
			return nil, i, d.fail(UnterminatedArray, i)
		}
		switch text[i] {
		case ']':
			return arr, i + 1, nil
		case ',':
			i = SkipSpace(text, i+1)
			if !d.strict && i < len(text) && text[i] == ']' {
				return arr, i + 1, nil // trailing comma
			}
		default:
			return nil, i, d.fail(UnexpectedCharacter, i)
		}
	}
}

// object decodes an object whose opening brace is at pos.
func (d *decoder) object(pos int) (Value, int, error) {
	if err := d.enter(pos); err != nil {
		return nil, pos, err
	}
	defer d.leave()

	text := d.text
	obj := new(Object)
	i := SkipSpace(text, pos+1)
	if i < len(text) && text[i] == '}' {
		return obj, i + 1, nil
	}
	for {
		if i >= len(text) {
			return nil, i, d.fail(UnterminatedObject, i)
		} else if text[i] != '"' {
			return nil, i, d.fail(ExpectedQuotedKey, i)
		}
		kend, esc, err := d.scanString(i)
		if err != nil {
			return nil, i, err
		}
		key, err := d.stringValue(i, kend, esc)
		if err != nil {
			return nil, i, err
		}

		i = SkipSpace(text, kend)
		if i >= len(text) {
			return nil, i, d.fail(UnterminatedObject, i)
		} else if text[i] != ':' {
			return nil, i, d.fail(ExpectedColon, i)
		}

		v, next, err := d.value(SkipSpace(text, i+1), UnterminatedObject)
		if err != nil {
			return nil, next, err
		}
		obj.Set(key, v)

		i = SkipSpace(text, next)
		if i >= len(text) {
			return nil, i, d.fail(UnterminatedObject, i)
		}
		switch text[i] {
		case '}':
			return obj, i + 1, nil
		case ',':
			i = SkipSpace(text, i+1)
			if !d.strict && i < len(text) && text[i] == '}' {
				return obj, i + 1, nil // trailing comma
			}
		default:
			return nil, i, d.fail(ExpectedCommaOrBrace, i)
		}
	}
}
