// SPDX-FileCopyrightText: Copyright 2019 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

// Version represents a JSON-RPC version.
const Version = "2.0"

// list of JSON-RPC member names.
const (
	keyCode    = "code"
	keyData    = "data"
	keyError   = "error"
	keyID      = "id"
	keyJSONRPC = "jsonrpc"
	keyMessage = "message"
	keyMethod  = "method"
	keyParams  = "params"
	keyResult  = "result"
)
