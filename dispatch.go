// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"context"

	"go.uber.org/zap"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

// dispatch invokes the handler registered for the request's method.
//
// It returns either a result or an error, never both.
func (p *Processor) dispatch(ctx context.Context, req *Request) (jsonvalue.Value, *Error) {
	h, found := p.registry.Lookup(req.method)
	if !found {
		return jsonvalue.Value{}, newError(MethodNotFound, jsonvalue.Value{})
	}

	reply := p.invoke(ctx, h, req)
	switch {
	case reply.err != nil:
		return jsonvalue.Value{}, reply.err
	case reply.result.Exists():
		return reply.result, nil
	default:
		// the handler produced nothing
		return jsonvalue.Value{}, newError(InternalError, jsonvalue.Value{})
	}
}

// invoke calls h, turning a panic into the empty Reply.
func (p *Processor) invoke(ctx context.Context, h Handler, req *Request) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("handler panicked",
				zap.String("req.Method", req.method),
				zap.Stringer("req.ID", req.id),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			reply = Reply{}
		}
	}()

	return h(ctx, req.params)
}
