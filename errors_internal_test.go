// SPDX-FileCopyrightText: Copyright 2019 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.lsp.dev/jsonrpc/jsonvalue"
)

func TestErrorFrame(t *testing.T) {
	t.Parallel()

	tests := map[string]func() *Error{
		"newError": func() *Error {
			return newError(MethodNotFound, jsonvalue.Value{})
		},
		"errorText": func() *Error {
			return errorText(InvalidRequest, "bad request")
		},
		"ReplyInvalidParams": func() *Error {
			return ReplyInvalidParams().Err()
		},
		"ReplyInternalErrorf": func() *Error {
			return ReplyInternalErrorf("%d failures", 2).Err()
		},
	}
	for name, build := range tests {
		build := build
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			detail := fmt.Sprintf("%+v", build())
			// the frame is the function literal that asked for the error
			if !strings.Contains(detail, "TestErrorFrame.func") {
				t.Errorf("%%+v: %q does not name the building function", detail)
			}
			if !strings.Contains(detail, "errors_internal_test.go") {
				t.Errorf("%%+v: %q does not name the building file", detail)
			}
		})
	}
}

func TestErrorFrameOfValidation(t *testing.T) {
	t.Parallel()

	_, err := parseRequest(jsonvalue.Int(1))
	if err == nil {
		t.Fatal("parseRequest: expected an error")
	}
	if detail := fmt.Sprintf("%+v", err); !strings.Contains(detail, "parseRequest") {
		t.Errorf("%%+v: %q does not name parseRequest", detail)
	}

	p := NewProcessor(NewRegistry())
	_, err = p.dispatch(context.Background(), &Request{method: "missing"})
	if err == nil {
		t.Fatal("dispatch: expected an error")
	}
	if err.Code != MethodNotFound {
		t.Fatalf("dispatch: got code %v, want %v", err.Code, MethodNotFound)
	}
	if detail := fmt.Sprintf("%+v", err); !strings.Contains(detail, "(*Processor).dispatch") {
		t.Errorf("%%+v: %q does not name dispatch", detail)
	}
}
