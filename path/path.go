// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package path implements traversal over the structure of decoded JSON
// values.
//
// A path is a sequence of elements, each of which selects a step down from
// the current value: a string names an object member, an int indexes an
// array, and a Transform computes the next value from the current one.
package path

import (
	"errors"
	"fmt"

	"github.com/creachadair/qjson"
)

// ErrNotFound is reported when a path names an object key or array index
// that is not present.
var ErrNotFound = errors.New("not found")

// A Transform computes a new value from the value at the current step of a
// path. A plain func with the same signature is also accepted as a path
// element.
type Transform func(qjson.Value) (qjson.Value, error)

// Error records the path element at which traversal failed.
type Error struct {
	Step int // offset of the failing element in the path
	Elem any // the failing element
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("step %d (%v): %v", e.Step, e.Elem, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Get follows path from v and returns the value it reaches, which must have
// type T.
func Get[T qjson.Value](v qjson.Value, path ...any) (T, error) {
	var zero T
	c := New(v)
	if err := c.Down(path...).Err(); err != nil {
		return zero, err
	}
	if out, ok := c.Value().(T); ok {
		return out, nil
	}
	return zero, fmt.Errorf("got %v value, want %T", kindOf(c.Value()), zero)
}

// A Cursor tracks a position in the structure of a qjson.Value, along with
// every value visited between its origin and that position.
type Cursor struct {
	org   qjson.Value
	trail []qjson.Value
	err   error
}

// New returns a Cursor positioned at origin.
func New(origin qjson.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the value at which c was created.
func (c *Cursor) Origin() qjson.Value { return c.org }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return c.Depth() == 0 }

// Depth reports the number of steps between the origin and the current value.
func (c *Cursor) Depth() int { return len(c.trail) }

// Value returns the value at the current position of c.
func (c *Cursor) Value() qjson.Value {
	if n := len(c.trail); n > 0 {
		return c.trail[n-1]
	}
	return c.org
}

// Path returns the values from the origin through the current position,
// inclusive.
func (c *Cursor) Path() []qjson.Value {
	out := make([]qjson.Value, 0, len(c.trail)+1)
	return append(append(out, c.org), c.trail...)
}

// Err returns the error from the latest call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c back one step, unless it is already at its origin, and returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 0 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset moves c back to its origin and discards any error.
func (c *Cursor) Reset() { c.trail = c.trail[:0]; c.err = nil }

// Down follows path from the current value of c, and returns c.
//
// A string element requires an *qjson.Object and selects the value of the
// member with that key. An int element requires a qjson.Array and selects an
// element by offset; negative offsets count back from the end, so -1 is the
// last element. A Transform (or a plain func of the same type) replaces the
// current value with its result.
//
// Down stops at the first element that cannot be followed, leaving c at the
// last value it reached, and records an *Error that Err reports.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for i, elem := range path {
		next, err := step(c.Value(), elem)
		if err != nil {
			c.err = &Error{Step: i, Elem: elem, Err: err}
			break
		}
		c.trail = append(c.trail, next)
	}
	return c
}

// step returns the value reached by following elem from cur.
func step(cur qjson.Value, elem any) (qjson.Value, error) {
	switch t := elem.(type) {
	case string:
		obj, ok := cur.(*qjson.Object)
		if !ok {
			return nil, fmt.Errorf("key %q applied to %v", t, kindOf(cur))
		}
		if v, ok := obj.Get(t); ok {
			return v, nil
		}
		return nil, fmt.Errorf("key %q: %w", t, ErrNotFound)

	case int:
		arr, ok := cur.(qjson.Array)
		if !ok {
			return nil, fmt.Errorf("index %d applied to %v", t, kindOf(cur))
		}
		if t < 0 {
			t += len(arr)
		}
		if t < 0 || t >= len(arr) {
			return nil, fmt.Errorf("index %v of %d elements: %w", elem, len(arr), ErrNotFound)
		}
		return arr[t], nil

	case Transform:
		return t(cur)
	case func(qjson.Value) (qjson.Value, error):
		return t(cur)
	}
	return nil, fmt.Errorf("unsupported path element of type %T", elem)
}

func kindOf(v qjson.Value) string {
	if v == nil {
		return "missing"
	}
	return v.Kind().String()
}
