// SPDX-FileCopyrightText: Copyright 2020 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"fmt"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

// ID is a Request identifier.
//
// It holds a string, a number, or null. The zero ID is null.
type ID struct {
	value jsonvalue.Value
}

// compile time check whether the ID implements a fmt.Formatter and fmt.Stringer interfaces.
var (
	_ fmt.Formatter = ID{}
	_ fmt.Stringer  = ID{}
)

// NewNumberID returns a new number request ID.
func NewNumberID(v int64) ID { return ID{value: jsonvalue.Int(v)} }

// NewStringID returns a new string request ID.
func NewStringID(v string) ID { return ID{value: jsonvalue.String(v)} }

// Value returns the ID as it appears on the wire.
func (id ID) Value() jsonvalue.Value {
	if !id.value.Exists() {
		return jsonvalue.Null()
	}
	return id.value
}

// IsNull reports whether the ID is null.
func (id ID) IsNull() bool { return !id.value.Exists() || id.value.IsNull() }

// String returns a non ambiguous representation of the ID, string forms are
// quoted, number forms are preceded by a #.
func (id ID) String() string { return fmt.Sprintf("%q", id) }

// Format writes the ID to the formatter.
//
// If the rune is q the representation is non ambiguous,
// string forms are quoted, number forms are preceded by a #.
func (id ID) Format(f fmt.State, r rune) {
	numF, strF := `%s`, `%s`
	if r == 'q' {
		numF, strF = `#%s`, `%q`
	}

	switch v := id.Value(); v.Kind() {
	case jsonvalue.KindString:
		s, _ := v.AsString()
		fmt.Fprintf(f, strF, s)
	case jsonvalue.KindNumber:
		n, _ := v.NumberText()
		fmt.Fprintf(f, numF, n)
	default:
		fmt.Fprint(f, "null")
	}
}

// Request is a validated request.
type Request struct {
	// method is a string containing the method name to invoke.
	method string
	// params is either an array or an object, or absent.
	params jsonvalue.Value
	// id of this request, used to tie the Response back to the request.
	id ID
	// notify is set when the request carried no id.
	notify bool
}

// Method returns the name of the method to invoke.
func (r *Request) Method() string { return r.method }

// Params returns the params of the request, the zero Value if there were none.
func (r *Request) Params() jsonvalue.Value { return r.params }

// ID returns the id of the request. It is null for notifications.
func (r *Request) ID() ID { return r.id }

// IsNotify returns true if this request is a notification.
func (r *Request) IsNotify() bool { return r.notify }

// parseRequest validates a decoded request.
//
// The checks run in a fixed order and the first failure wins. On failure the
// returned Request still carries the id the error response must echo, which is
// null unless a well typed id was found.
func parseRequest(v jsonvalue.Value) (*Request, *Error) {
	req := &Request{}

	if !v.IsObject() {
		return req, errorText(InvalidRequest, fmt.Sprintf("expected a request object, got %s", v.Kind()))
	}
	version := v.Get(keyJSONRPC)
	if err := checkString(keyJSONRPC, version); err != nil {
		return req, err
	}
	method := v.Get(keyMethod)
	if err := checkString(keyMethod, method); err != nil {
		return req, err
	}

	// the id goes into the response, so it must be valid before anything
	// else is reported against it
	id := v.Get(keyID)
	switch id.Kind() {
	case jsonvalue.KindAbsent:
		req.notify = true
	case jsonvalue.KindString, jsonvalue.KindNumber, jsonvalue.KindNull:
		req.id = ID{value: id}
	default:
		return req, errorText(InvalidRequest, `"id" must contain a string, number, or NULL value`)
	}

	if s, _ := version.AsString(); s != Version {
		return req, errorText(InvalidRequest, `"jsonrpc" must be exactly "2.0"`)
	}

	req.method, _ = method.AsString()
	if req.method == "" {
		return req, errorText(InvalidRequest, `"method" must not be empty`)
	}

	params := v.Get(keyParams)
	if params.Exists() && !params.IsArray() && !params.IsObject() {
		return req, errorText(InvalidRequest, `"params" must be an array or an object`)
	}
	req.params = params

	return req, nil
}

func checkString(key string, v jsonvalue.Value) *Error {
	switch {
	case !v.Exists():
		return errorText(InvalidRequest, fmt.Sprintf("%q member is required", key))
	case !v.IsString():
		return errorText(InvalidRequest, fmt.Sprintf("%q must be a string, got %s", key, v.Kind()))
	}
	return nil
}
