// SPDX-FileCopyrightText: Copyright 2019 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

const (
	// Send indicates the message is outgoing.
	Send = "send"
	// Receive indicates the message is incoming.
	Receive = "receive"
)

// Flags are the configuration switches of a Processor.
type Flags uint

const (
	// DisableErrorData omits the data member of every error object.
	DisableErrorData Flags = 1 << iota

	// OrderedResponse writes object members in insertion order instead of
	// sorted by key.
	OrderedResponse
)

// Processor turns raw JSON-RPC input into raw JSON-RPC output.
//
// A Processor holds no mutable state, so Handle and HandleReader may be
// called from multiple goroutines at once.
type Processor struct {
	registry *Registry
	flags    Flags
	logger   *zap.Logger
}

// Options represents a functional options.
type Options func(*Processor)

// WithFlags apply configuration flags to Processor.
func WithFlags(flags Flags) Options {
	return func(p *Processor) {
		p.flags = flags
	}
}

// WithLogger apply custom Logger to Processor.
func WithLogger(logger *zap.Logger) Options {
	return func(p *Processor) {
		p.logger = logger
	}
}

var defaultLogger = zap.NewNop()

// NewProcessor returns a Processor dispatching to the handlers of registry.
//
// The registry becomes read only; a nil registry has no methods.
func NewProcessor(registry *Registry, options ...Options) *Processor {
	if registry == nil {
		registry = NewRegistry()
	}
	registry.seal()

	p := &Processor{
		registry: registry,
	}
	for _, opt := range options {
		opt(p)
	}

	// the default Logger does nothing
	if p.logger == nil {
		p.logger = defaultLogger
	}

	return p
}

// Handle processes one request or batch held in data.
//
// It returns the response bytes, or nil when no response is due.
func (p *Processor) Handle(ctx context.Context, data []byte) []byte {
	v, err := jsonvalue.Parse(data)
	return p.process(ctx, v, err)
}

// HandleReader processes one request or batch read from r until EOF.
//
// It returns the response bytes, or nil when no response is due. Read
// failures are answered like malformed input.
func (p *Processor) HandleReader(ctx context.Context, r io.Reader) []byte {
	v, err := jsonvalue.ParseReader(r)
	return p.process(ctx, v, err)
}

func (p *Processor) process(ctx context.Context, v jsonvalue.Value, err error) []byte {
	if err != nil {
		p.logger.Debug(Receive, zap.Error(err))
		return p.encode(p.assembleOne(&Response{err: errorText(ParseError, err.Error())}))
	}

	if !v.IsArray() {
		resp := p.handleOne(ctx, v)
		if resp == nil {
			return nil
		}
		return p.encode(p.assembleOne(resp))
	}

	if v.Len() == 0 {
		p.logger.Debug(Receive, zap.String("batch", "empty"))
		return p.encode(p.assembleOne(&Response{err: errorText(InvalidRequest, "Request must not be an empty array")}))
	}

	elems := v.Elements()
	responses := make([]*Response, len(elems))
	for i, elem := range elems {
		responses[i] = p.handleOne(ctx, elem)
	}

	batch, ok := p.assembleBatch(responses)
	if !ok {
		return nil
	}
	return p.encode(batch)
}

// handleOne validates and dispatches a single request.
//
// It returns nil when no response is due. Only a valid notification is left
// unanswered; a request failing validation is always answered, with a null id
// if no valid id could be read from it.
func (p *Processor) handleOne(ctx context.Context, v jsonvalue.Value) *Response {
	req, verr := parseRequest(v)
	if verr != nil {
		p.logger.Debug(Receive,
			zap.Stringer("req.ID", req.id),
			zap.Stringer("req.Data", verr.Data),
			zap.Error(verr),
		)
		return &Response{err: verr, id: req.id}
	}

	start := time.Now()
	p.logger.Debug(Receive,
		zap.Stringer("req.ID", req.id),
		zap.String("req.Method", req.method),
		zap.Bool("req.Notify", req.notify),
	)

	result, err := p.dispatch(ctx, req)
	elapsed := time.Since(start)

	if req.notify {
		if err != nil {
			p.logger.Debug("discarding error of notification",
				zap.String("req.Method", req.method),
				zap.Error(err),
			)
		}
		return nil
	}

	p.logger.Debug(Send,
		zap.Stringer("resp.ID", req.id),
		zap.String("req.Method", req.method),
		zap.Duration("elapsed", elapsed),
		zap.Bool("resp.Error", err != nil),
	)

	return &Response{result: result, err: err, id: req.id}
}

// encode writes the response in wire form.
//
// A response built by the processor is always encodable; failure is a defect.
func (p *Processor) encode(v jsonvalue.Value) []byte {
	order := jsonvalue.SortKeys
	if p.flags&OrderedResponse != 0 {
		order = jsonvalue.PreserveOrder
	}

	data, err := jsonvalue.Marshal(v, order)
	if err != nil {
		p.logger.Error(Send, zap.Error(err))
		panic(fmt.Sprintf("jsonrpc: failed to encode response: %v", err))
	}

	return data
}
