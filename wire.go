// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"go.lsp.dev/jsonrpc/jsonvalue"
)

// Response is a reply to a Request.
//
// It carries either a result or an error, and the id of the request it
// answers.
type Response struct {
	// result is the content of the response.
	result jsonvalue.Value
	// err is set only if the call failed.
	err *Error
	// id of the request this is a response to.
	id ID
}

// Result returns the result of the response, the zero Value on failure.
func (r *Response) Result() jsonvalue.Value { return r.result }

// Err returns the error of the response, nil on success.
func (r *Response) Err() *Error { return r.err }

// ID returns the id of the request this is a response to.
func (r *Response) ID() ID { return r.id }

// errorObject builds the wire form of e, dropping the data member when the
// processor is configured with DisableErrorData.
func (p *Processor) errorObject(e *Error) jsonvalue.Value {
	msg := e.Message
	if msg == "" {
		msg = e.Code.Message()
	}

	obj := jsonvalue.Object(
		jsonvalue.Member{Key: keyCode, Value: jsonvalue.Int(int64(e.Code))},
		jsonvalue.Member{Key: keyMessage, Value: jsonvalue.String(msg)},
	)
	if e.Data.Exists() && p.flags&DisableErrorData == 0 {
		obj.Set(keyData, e.Data)
	}

	return obj
}

// assembleOne builds the response envelope of r.
//
// Exactly one of the result and the error must be set.
func (p *Processor) assembleOne(r *Response) jsonvalue.Value {
	if (r.err != nil) == r.result.Exists() {
		panic("jsonrpc: response must carry exactly one of result or error")
	}

	obj := jsonvalue.Object(jsonvalue.Member{Key: keyJSONRPC, Value: jsonvalue.String(Version)})
	if r.err != nil {
		obj.Set(keyError, p.errorObject(r.err))
	} else {
		obj.Set(keyResult, r.result)
	}
	obj.Set(keyID, r.id.Value())

	return obj
}

// assembleBatch builds the batch response from the per element outcomes, in
// order. A nil outcome produced no response.
//
// It reports false when no element produced a response, in which case nothing
// must be sent back at all.
func (p *Processor) assembleBatch(responses []*Response) (jsonvalue.Value, bool) {
	elems := make([]jsonvalue.Value, 0, len(responses))
	for _, r := range responses {
		if r == nil {
			continue
		}
		elems = append(elems, p.assembleOne(r))
	}
	if len(elems) == 0 {
		return jsonvalue.Value{}, false
	}

	return jsonvalue.Array(elems...), true
}
