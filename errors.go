// SPDX-FileCopyrightText: Copyright 2019 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"fmt"

	"golang.org/x/xerrors"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

// Error represents a JSON-RPC error object.
type Error struct {
	// Code a number indicating the error type that occurred.
	Code Code

	// Message a string providing a short description of the error.
	Message string

	// Data a Primitive or Structured value that contains additional
	// information about the error. The zero Value means it is omitted.
	Data jsonvalue.Value

	frame xerrors.Frame
}

// compile time check whether the Error implements error, fmt.Formatter and xerrors.Formatter interfaces.
var (
	_ error             = (*Error)(nil)
	_ fmt.Formatter     = (*Error)(nil)
	_ xerrors.Formatter = (*Error)(nil)
)

// Error implements error.Error.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, c rune) {
	xerrors.FormatError(e, s, c)
}

// FormatError implements xerrors.Formatter.
func (e *Error) FormatError(p xerrors.Printer) (next error) {
	p.Printf("%s (code=%v)", e.Message, e.Code)
	if p.Detail() {
		if e.Data.Exists() {
			p.Printf("data: %s", e.Data)
		}
		e.frame.Format(p)
	}
	return nil
}

// Is reports whether target is an *Error with the same code, so that errors
// wrapping ErrInvalidParams or ErrInternal match any error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && e.Code == t.Code
}

// newError builds an Error of the given code with its fixed message.
//
// The recorded frame is the caller of newError.
func newError(c Code, data jsonvalue.Value) *Error {
	return makeError(c, data, xerrors.Caller(1))
}

// errorText builds an Error carrying text as its data member.
//
// The recorded frame is the caller of errorText.
func errorText(c Code, text string) *Error {
	return makeError(c, jsonvalue.String(text), xerrors.Caller(1))
}

// makeError builds an Error recording frame as its creation site.
func makeError(c Code, data jsonvalue.Value, frame xerrors.Frame) *Error {
	return &Error{
		Code:    c,
		Message: c.Message(),
		Data:    data,
		frame:   frame,
	}
}

// constErr represents a error constant.
type constErr string

// compile time check whether the constErr implements error interface.
var _ error = (*constErr)(nil)

// Error implements error.Error.
func (e constErr) Error() string { return string(e) }

// list of errors.
var (
	// ErrInvalidParams may be wrapped by errors returned from Typed handler
	// functions to reply with an invalid params error.
	ErrInvalidParams = &Error{Code: InvalidParams, Message: InvalidParams.Message()}

	// ErrInternal may be wrapped by errors returned from Typed handler
	// functions to reply with an internal error.
	ErrInternal = &Error{Code: InternalError, Message: InternalError.Message()}

	// ErrRegistrySealed is returned when registering into a Registry that is
	// already used by a Processor.
	ErrRegistrySealed = constErr("registry is sealed")

	// ErrEmptyMethodName is returned when registering a method without name.
	ErrEmptyMethodName = constErr("method name must not be empty")

	// ErrNilHandler is returned when registering a nil Handler.
	ErrNilHandler = constErr("handler must not be nil")
)
