// SPDX-FileCopyrightText: Copyright 2020 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fake provides canned methods for exercising a jsonrpc.Processor.
package fake

import (
	"context"
	"fmt"
	"math"

	"go.lsp.dev/jsonrpc"
	"go.lsp.dev/jsonrpc/jsonvalue"
)

// list of method names.
const (
	MethodNoop          = "noop"
	MethodAdd           = "add"
	MethodSubtract      = "subtract"
	MethodEcho          = "echo"
	MethodInternalError = "internal_error"
	MethodInvalidParams = "invalid_params"
	MethodPanic         = "panic"
)

// Methods returns the canned methods in registration order.
func Methods() []jsonrpc.Method {
	return []jsonrpc.Method{
		{Name: MethodInternalError, Handler: InternalError},
		{Name: MethodInvalidParams, Handler: InvalidParams},
		{Name: MethodNoop, Handler: Noop},
		{Name: MethodAdd, Handler: Add},
		{Name: MethodSubtract, Handler: Subtract},
		{Name: MethodEcho, Handler: Echo},
		{Name: MethodPanic, Handler: Panic},
	}
}

// NewRegistry returns a Registry holding the canned methods.
func NewRegistry() *jsonrpc.Registry {
	reg := jsonrpc.NewRegistry()
	if err := reg.RegisterMethods(Methods()...); err != nil {
		panic(err) // the canned names are unique and non empty
	}
	return reg
}

// InternalError produces nothing.
func InternalError(context.Context, jsonvalue.Value) jsonrpc.Reply {
	return jsonrpc.Reply{}
}

// InvalidParams always rejects its params.
func InvalidParams(context.Context, jsonvalue.Value) jsonrpc.Reply {
	return jsonrpc.ReplyInvalidParams()
}

// Noop replies null.
func Noop(context.Context, jsonvalue.Value) jsonrpc.Reply {
	return jsonrpc.Result(jsonvalue.Null())
}

// Add replies the sum of two integers given as [a, b] or {"a": a, "b": b}.
func Add(_ context.Context, params jsonvalue.Value) jsonrpc.Reply {
	a, b, err := operands(params, "a", "b")
	if err != nil {
		return jsonrpc.ReplyInvalidParams(jsonvalue.String(err.Error()))
	}
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return jsonrpc.ReplyInvalidParamsf("result overflows int64")
	}
	return jsonrpc.Result(jsonvalue.Int(a + b))
}

// Subtract replies the difference of two integers given as [minuend, subtrahend]
// or {"minuend": m, "subtrahend": s}.
func Subtract(_ context.Context, params jsonvalue.Value) jsonrpc.Reply {
	a, b, err := operands(params, "minuend", "subtrahend")
	if err != nil {
		return jsonrpc.ReplyInvalidParams(jsonvalue.String(err.Error()))
	}
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return jsonrpc.ReplyInvalidParamsf("result overflows int64")
	}
	return jsonrpc.Result(jsonvalue.Int(a - b))
}

// Echo replies its params, or null without params.
func Echo(_ context.Context, params jsonvalue.Value) jsonrpc.Reply {
	return jsonrpc.Result(params)
}

// Panic panics.
func Panic(context.Context, jsonvalue.Value) jsonrpc.Reply {
	panic("fake: panic method called")
}

// operands reads two integers from positional or named params.
func operands(params jsonvalue.Value, first, second string) (a, b int64, err error) {
	switch params.Kind() {
	case jsonvalue.KindArray:
		if n := params.Len(); n != 2 {
			return 0, 0, fmt.Errorf("expected 2 array items, got %d", n)
		}
		if a, err = integer(params.Index(0), "index 0"); err != nil {
			return 0, 0, err
		}
		b, err = integer(params.Index(1), "index 1")
		return a, b, err

	case jsonvalue.KindObject:
		if a, err = integer(params.Get(first), fmt.Sprintf("%q", first)); err != nil {
			return 0, 0, err
		}
		b, err = integer(params.Get(second), fmt.Sprintf("%q", second))
		return a, b, err

	default:
		return 0, 0, fmt.Errorf("expected array or object, got %s", params.Kind())
	}
}

func integer(v jsonvalue.Value, where string) (int64, error) {
	if !v.Exists() {
		return 0, fmt.Errorf("%s not found", where)
	}
	n, ok := v.AsInt64()
	if !ok {
		return 0, fmt.Errorf("expected integer at %s, got %s", where, v.Kind())
	}
	return n, nil
}
