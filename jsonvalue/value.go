// SPDX-FileCopyrightText: 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package jsonvalue implements the generic JSON tree used by the JSON-RPC core.
//
// A Value is one of null, boolean, number, string, array or object. Objects
// remember the insertion order of their members so that a document can be
// written back exactly as it was received. The zero Value is the absent value,
// which is how a missing member or parameter is represented.
package jsonvalue // import "go.lsp.dev/jsonrpc/jsonvalue"

import (
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the type of a JSON value.
type Kind uint8

// list of value kinds.
const (
	// KindAbsent is the kind of the zero Value.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable-by-convention JSON value.
//
// Array and Object values share their backing storage when copied.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or the literal text of a number
	arr  []Value
	obj  *orderedmap.OrderedMap[string, Value]
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns a JSON number holding n.
func Int(n int64) Value { return Value{kind: KindNumber, s: strconv.FormatInt(n, 10)} }

// Float returns a JSON number holding f.
//
// NaN and infinities have no JSON representation and are rejected.
func Float(f float64) (Value, error) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !validNumber(s) {
		return Value{}, fmt.Errorf("jsonvalue: unsupported float value %s", s)
	}
	return Value{kind: KindNumber, s: s}, nil
}

// Number returns a JSON number from its literal text, e.g. "2.3" or "-1e10".
func Number(literal string) (Value, error) {
	if !validNumber(literal) {
		return Value{}, fmt.Errorf("jsonvalue: invalid number literal %q", literal)
	}
	return Value{kind: KindNumber, s: literal}, nil
}

// Array returns a JSON array of elems.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// Object returns a JSON object holding members in the given order.
//
// A repeated key keeps its first position and its last value.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, obj: orderedmap.New[string, Value]()}
	for _, m := range members {
		v.obj.Set(m.Key, m.Value)
	}
	return v
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether v is present, i.e. is not the zero Value.
func (v Value) Exists() bool { return v.kind != KindAbsent }

// IsNull reports whether v is the JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumber reports whether v is a JSON number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsString reports whether v is a JSON string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether v is a JSON array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsObject reports whether v is a JSON object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (b, ok bool) { return v.b, v.kind == KindBool }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// NumberText returns the literal text of a number value.
func (v Value) NumberText() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsInt64 returns the number held by v if it is an integer that fits an int64.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.s, 10, 64)
	return n, err == nil
}

// AsFloat64 returns the number held by v as a float64.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	return f, err == nil
}

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Index returns the i'th element of an array, or the absent value.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Elements returns the elements of an array.
//
// The returned slice must not be modified.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Get returns the member key of an object, or the absent value.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Value{}
	}
	m, _ := v.obj.Get(key)
	return m
}

// Members returns the members of an object in insertion order.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	members := make([]Member, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		members = append(members, Member{Key: pair.Key, Value: pair.Value})
	}
	return members
}

// Set adds or replaces the member key of an object.
//
// A replaced member keeps its position. Set panics if v is not an object.
func (v Value) Set(key string, val Value) {
	if v.kind != KindObject {
		panic("jsonvalue: Set on " + v.kind.String() + " value")
	}
	v.obj.Set(key, val)
}

// String implements fmt.Stringer.
//
// The output is the compact JSON encoding in insertion order.
func (v Value) String() string {
	if !v.Exists() {
		return "<absent>"
	}
	data, err := Marshal(v, PreserveOrder)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(data)
}

// validNumber reports whether s is a number literal per RFC 8259.
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
