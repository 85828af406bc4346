// SPDX-FileCopyrightText: 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package jsonrpc is a transport agnostic implementation of the server side of
// the JSON RPC 2 spec.
//
// https://www.jsonrpc.org/specification
//
// A Processor takes the raw bytes of one request or one batch of requests,
// validates and dispatches them to the handlers of a Registry, and returns the
// exact response bytes, or nil when no response is due. Reading and writing
// those bytes is left to the caller.
package jsonrpc // import "go.lsp.dev/jsonrpc"
