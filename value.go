// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindName = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// A Value is a decoded JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or *Object.
type Value interface {
	Kind() Kind
}

// Null is the JSON null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value. All JSON numbers decode as float64.
type Number float64

// A String is a string value.
type String string

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is a collection of key-value members. Members are kept in the
// order their keys were first set. Setting an existing key replaces its value
// without moving it.
//
// The zero Object is empty and ready for use.
type Object struct {
	members []Member
	index   map[string]int // built once the object outgrows a linear scan
}

// indexThreshold is the number of members beyond which an Object keeps a map
// from keys to member positions.
const indexThreshold = 8

// NewObject constructs an object with the given members, in order.
// Later members replace earlier members with the same key.
func NewObject(members ...Member) *Object {
	o := &Object{members: make([]Member, 0, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Field is a convenience function to construct a Member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return ObjectKind }

// Len reports the number of distinct keys in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

func (o *Object) lookup(key string) int {
	if o == nil {
		return -1
	} else if o.index != nil {
		if i, ok := o.index[key]; ok {
			return i
		}
		return -1
	}
	for i := range o.members {
		if o.members[i].Key == key {
			return i
		}
	}
	return -1
}

// Set sets the value of key in o to v.
func (o *Object) Set(key string, v Value) {
	if i := o.lookup(key); i >= 0 {
		o.members[i].Value = v
		return
	}
	o.members = append(o.members, Member{Key: key, Value: v})
	if o.index != nil {
		o.index[key] = len(o.members) - 1
	} else if len(o.members) > indexThreshold {
		o.index = make(map[string]int, len(o.members))
		for i, m := range o.members {
			o.index[m.Key] = i
		}
	}
}

// Get returns the value of key in o, and reports whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if i := o.lookup(key); i >= 0 {
		return o.members[i].Value, true
	}
	return nil, false
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	if i := o.lookup(key); i >= 0 {
		return &o.members[i]
	}
	return nil
}

// At returns the member of o at index i in insertion order.
// It panics if i is out of range.
func (o *Object) At(i int) Member { return o.members[i] }

// Keys returns the keys of o in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, o.Len())
	for i := range keys {
		keys[i] = o.members[i].Key
	}
	return keys
}

// Members returns an iterator over the keys and values of o in insertion
// order.
func (o *Object) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := 0; i < o.Len(); i++ {
			if !yield(o.members[i].Key, o.members[i].Value) {
				return
			}
		}
	}
}

// Equal reports whether o and p have the same keys with equal values,
// regardless of order.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for i := 0; i < o.Len(); i++ {
		m := o.members[i]
		w, ok := p.Get(m.Key)
		if !ok || !Equal(m.Value, w) {
			return false
		}
	}
	return true
}

func (o *Object) String() string { return Encode(o) }

// Equal reports whether a and b are structurally equal.  Objects are compared
// without regard to the order of their members.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case nil:
		return b == nil
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool, Number, String:
		return a == b
	case Array:
		u, ok := b.(Array)
		return ok && slices.EqualFunc(t, u, Equal)
	case *Object:
		u, ok := b.(*Object)
		return ok && t.Equal(u)
	}
	return false
}

// Native converts v into a plain Go value: nil, bool, float64, string, []any,
// or map[string]any.
func Native(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Native(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for key, val := range t.Members() {
			out[key] = Native(val)
		}
		return out
	}
	return nil
}

// ToValue converts a Go value into a Value. The input may be nil, a Value, a
// bool, a string, a value of any integer or floating-point type, a slice
// whose elements are valid inputs, or a map with string keys whose values are
// valid inputs. Map members are ordered by key. ToValue panics if v does not
// have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		o := &Object{members: make([]Member, 0, len(t))}
		for _, key := range slices.Sorted(maps.Keys(t)) {
			o.Set(key, ToValue(t[key]))
		}
		return o
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Slice, reflect.Array:
		arr := make(Array, rv.Len())
		for i := range arr {
			arr[i] = ToValue(rv.Index(i).Interface())
		}
		return arr
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				return strings.Compare(a.String(), b.String())
			})
			o := &Object{members: make([]Member, 0, len(keys))}
			for _, k := range keys {
				o.Set(k.String(), ToValue(rv.MapIndex(k).Interface()))
			}
			return o
		}
	}
	panic(fmt.Sprintf("unsupported value type %T", v))
}
