// SPDX-FileCopyrightText: Copyright 2020 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/xerrors"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

// Handler is invoked to handle an incoming request.
//
// params is the zero Value when the request carried no params. Handlers are
// called synchronously by the Processor.
type Handler func(ctx context.Context, params jsonvalue.Value) Reply

// Reply is the outcome of a Handler: either a result or an error.
//
// The zero Reply means the handler produced nothing, which is answered with
// an internal error.
type Reply struct {
	result jsonvalue.Value
	err    *Error
}

// Result returns a successful Reply carrying v. The zero Value is sent as null.
func Result(v jsonvalue.Value) Reply {
	if !v.Exists() {
		v = jsonvalue.Null()
	}
	return Reply{result: v}
}

// ReplyInvalidParams returns a Reply with an invalid params error, optionally
// carrying data.
func ReplyInvalidParams(data ...jsonvalue.Value) Reply {
	return Reply{err: makeError(InvalidParams, first(data), xerrors.Caller(1))}
}

// ReplyInvalidParamsf returns a Reply with an invalid params error carrying the
// formatted text as data.
func ReplyInvalidParamsf(format string, args ...interface{}) Reply {
	return Reply{err: makeError(InvalidParams, jsonvalue.String(fmt.Sprintf(format, args...)), xerrors.Caller(1))}
}

// ReplyInternalError returns a Reply with an internal error, optionally carrying data.
func ReplyInternalError(data ...jsonvalue.Value) Reply {
	return Reply{err: makeError(InternalError, first(data), xerrors.Caller(1))}
}

// ReplyInternalErrorf returns a Reply with an internal error carrying the
// formatted text as data.
func ReplyInternalErrorf(format string, args ...interface{}) Reply {
	return Reply{err: makeError(InternalError, jsonvalue.String(fmt.Sprintf(format, args...)), xerrors.Caller(1))}
}

// Value returns the result of the reply, the zero Value if there is none.
func (r Reply) Value() jsonvalue.Value { return r.result }

// Err returns the error of the reply, nil if there is none.
func (r Reply) Err() *Error { return r.err }

func first(data []jsonvalue.Value) jsonvalue.Value {
	if len(data) == 0 {
		return jsonvalue.Value{}
	}
	return data[0]
}

// Typed adapts a function taking decoded params into a Handler.
//
// The params are decoded into P following the encoding/json rules, so P may
// be a slice or array for positional params, or a struct or map for named
// params. A decoding failure replies with invalid params. A returned error
// wrapping ErrInvalidParams or ErrInternal replies with that kind and the
// error text as data; any other error replies with an internal error.
func Typed[P, R any](fn func(ctx context.Context, params P) (R, error)) Handler {
	return func(ctx context.Context, params jsonvalue.Value) Reply {
		var p P
		if params.Exists() {
			if err := params.Decode(&p); err != nil {
				return ReplyInvalidParams(jsonvalue.String(err.Error()))
			}
		}

		res, err := fn(ctx, p)
		if err != nil {
			return errorReply(err)
		}

		v, err := jsonvalue.ValueOf(res)
		if err != nil {
			return ReplyInternalError(jsonvalue.String(err.Error()))
		}
		return Result(v)
	}
}

func errorReply(err error) Reply {
	var rpcErr *Error
	switch {
	case errors.As(err, &rpcErr) && err == error(rpcErr):
		// a bare *Error is passed through unchanged
		return Reply{err: rpcErr}
	case errors.Is(err, ErrInvalidParams):
		return ReplyInvalidParams(jsonvalue.String(err.Error()))
	default:
		return ReplyInternalError(jsonvalue.String(err.Error()))
	}
}
