// SPDX-FileCopyrightText: 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonvalue

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// readBufferSize is the chunk size used when parsing from an io.Reader.
const readBufferSize = 4096

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// SyntaxError describes malformed JSON input.
type SyntaxError struct {
	msg string
}

// compile time check whether the SyntaxError implements error interface.
var _ error = (*SyntaxError)(nil)

// Error implements error.Error.
func (e *SyntaxError) Error() string { return e.msg }

// Parse parses a single JSON document from data.
//
// Anything other than whitespace after the document is an error.
func Parse(data []byte) (Value, error) {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	return parse(iter)
}

// ParseReader parses a single JSON document read from r until EOF.
func ParseReader(r io.Reader) (Value, error) {
	return parse(jsoniter.Parse(api, r, readBufferSize))
}

func parse(iter *jsoniter.Iterator) (Value, error) {
	v := readValue(iter)
	// a number that ends the input leaves io.EOF behind, which is fine
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, newSyntaxError(iter.Error)
	}

	iter.WhatIsNext()
	switch iter.Error {
	case io.EOF:
		return v, nil
	case nil:
		return Value{}, &SyntaxError{msg: "end of file expected"}
	default:
		return Value{}, newSyntaxError(iter.Error)
	}
}

func newSyntaxError(err error) *SyntaxError {
	if err == io.EOF {
		return &SyntaxError{msg: "unexpected end of input"}
	}
	// the message quotes the input around the failure, which may be invalid UTF-8
	return &SyntaxError{msg: strings.ToValidUTF8(err.Error(), "\uFFFD")}
}

// continueReading reports whether a container callback may go on; io.EOF is
// left for the container to turn into a proper error.
func continueReading(iter *jsoniter.Iterator) bool {
	return iter.Error == nil || iter.Error == io.EOF
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()

	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())

	case jsoniter.NumberValue:
		lit := string(iter.ReadNumber())
		if !validNumber(lit) {
			iter.ReportError("readNumber", "invalid number "+strconv.Quote(lit))
		}
		return Value{kind: KindNumber, s: lit}

	case jsoniter.StringValue:
		str := iter.ReadString()
		if !utf8.ValidString(str) {
			iter.ReportError("readString", "invalid UTF-8 in string")
		}
		return String(str)

	case jsoniter.ArrayValue:
		elems := []Value{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			elems = append(elems, readValue(iter))
			return continueReading(iter)
		})
		return Value{kind: KindArray, arr: elems}

	case jsoniter.ObjectValue:
		obj := orderedmap.New[string, Value]()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if !utf8.ValidString(key) {
				iter.ReportError("readObject", "invalid UTF-8 in object key")
				return false
			}
			obj.Set(key, readValue(iter))
			return continueReading(iter)
		})
		return Value{kind: KindObject, obj: obj}

	default:
		iter.ReportError("readValue", "expected a JSON value")
		return Value{}
	}
}

// Decode stores v into the Go value pointed to by into, following the
// encoding/json rules.
func (v Value) Decode(into interface{}) error {
	if !v.Exists() {
		return fmt.Errorf("jsonvalue: decode of absent value")
	}
	data, err := Marshal(v, PreserveOrder)
	if err != nil {
		return err
	}
	if err := api.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to decode %s: %w", v.kind, err)
	}
	return nil
}

// ValueOf converts a Go value to a Value, following the encoding/json rules.
func ValueOf(x interface{}) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x)
	}

	data, err := api.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("failed to marshal %T: %w", x, err)
	}
	return Parse(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
