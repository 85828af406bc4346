// SPDX-FileCopyrightText: Copyright 2020 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.lsp.dev/jsonrpc"
	"go.lsp.dev/jsonrpc/jsonvalue"
)

type pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

type quotient struct {
	Quotient  int `json:"quotient"`
	Remainder int `json:"remainder"`
}

func divide(_ context.Context, p pair) (quotient, error) {
	switch {
	case p.B == 0:
		return quotient{}, fmt.Errorf("division by zero: %w", jsonrpc.ErrInvalidParams)
	case p.B < 0:
		return quotient{}, errors.New("negative divisor")
	case p.A < 0:
		return quotient{}, jsonrpc.ErrInvalidParams
	}
	return quotient{Quotient: p.A / p.B, Remainder: p.A % p.B}, nil
}

func sum(_ context.Context, xs []float64) (float64, error) {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total, nil
}

func TestTyped(t *testing.T) {
	t.Parallel()

	reg := jsonrpc.NewRegistry()
	if err := reg.RegisterMethods(
		jsonrpc.Method{Name: "divide", Handler: jsonrpc.Typed(divide)},
		jsonrpc.Method{Name: "sum", Handler: jsonrpc.Typed(sum)},
	); err != nil {
		t.Fatal(err)
	}
	p := jsonrpc.NewProcessor(reg, jsonrpc.WithFlags(jsonrpc.OrderedResponse))

	tests := map[string]struct {
		request string
		want    string
	}{
		"named params": {
			request: `{"jsonrpc":"2.0","method":"divide","params":{"a":7,"b":2},"id":1}`,
			want:    `{"jsonrpc":"2.0","result":{"quotient":3,"remainder":1},"id":1}`,
		},
		"positional params": {
			request: `{"jsonrpc":"2.0","method":"sum","params":[1,2.5,3],"id":1}`,
			want:    `{"jsonrpc":"2.0","result":6.5,"id":1}`,
		},
		"no params": {
			request: `{"jsonrpc":"2.0","method":"sum","id":1}`,
			want:    `{"jsonrpc":"2.0","result":0,"id":1}`,
		},
		"wrapped invalid params": {
			request: `{"jsonrpc":"2.0","method":"divide","params":{"a":1,"b":0},"id":1}`,
			want:    errorResponse(-32602, "Invalid params", quote("division by zero: Invalid params"), "1"),
		},
		"bare error passed through": {
			request: `{"jsonrpc":"2.0","method":"divide","params":{"a":-1,"b":1},"id":1}`,
			want:    errorResponse(-32602, "Invalid params", "", "1"),
		},
		"other error": {
			request: `{"jsonrpc":"2.0","method":"divide","params":{"a":1,"b":-1},"id":1}`,
			want:    errorResponse(-32603, "Internal error", quote("negative divisor"), "1"),
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := p.Handle(context.Background(), []byte(tt.request))
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("Handle(%s): (-want +got)\n%s", tt.request, diff)
			}
		})
	}

	t.Run("decode failure", func(t *testing.T) {
		t.Parallel()

		resp := parseResponse(t, p.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","method":"sum","params":{"a":1},"id":1}`)))
		if got, _ := resp.Get("error").Get("code").AsInt64(); got != int64(jsonrpc.InvalidParams) {
			t.Fatalf("error code: got %d, want %d in %s", got, jsonrpc.InvalidParams, resp)
		}
		if !resp.Get("error").Get("data").IsString() {
			t.Fatalf("expected decoder text as data in %s", resp)
		}
	})
}

func TestReply(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		reply    jsonrpc.Reply
		wantCode jsonrpc.Code
		wantData string
	}{
		"invalid params": {
			reply:    jsonrpc.ReplyInvalidParams(),
			wantCode: jsonrpc.InvalidParams,
		},
		"invalid params with data": {
			reply:    jsonrpc.ReplyInvalidParams(jsonvalue.Int(1)),
			wantCode: jsonrpc.InvalidParams,
			wantData: `1`,
		},
		"invalid paramsf": {
			reply:    jsonrpc.ReplyInvalidParamsf("missing %q", "a"),
			wantCode: jsonrpc.InvalidParams,
			wantData: `"missing \"a\""`,
		},
		"internal error": {
			reply:    jsonrpc.ReplyInternalError(),
			wantCode: jsonrpc.InternalError,
		},
		"internal errorf": {
			reply:    jsonrpc.ReplyInternalErrorf("%d failures", 2),
			wantCode: jsonrpc.InternalError,
			wantData: `"2 failures"`,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tt.reply.Err()
			if err == nil {
				t.Fatal("Err(): got nil")
			}
			if tt.reply.Value().Exists() {
				t.Fatalf("Value(): got %s on an error reply", tt.reply.Value())
			}
			if err.Code != tt.wantCode {
				t.Errorf("Code: got %s, want %s", err.Code, tt.wantCode)
			}
			if want := tt.wantCode.Message(); err.Message != want {
				t.Errorf("Message: got %q, want %q", err.Message, want)
			}

			var gotData string
			if err.Data.Exists() {
				gotData = err.Data.String()
			}
			if diff := cmp.Diff(tt.wantData, gotData); diff != "" {
				t.Errorf("Data: (-want +got)\n%s", diff)
			}
		})
	}

	t.Run("result", func(t *testing.T) {
		t.Parallel()

		r := jsonrpc.Result(jsonvalue.Value{})
		if r.Err() != nil || !r.Value().IsNull() {
			t.Fatalf("Result of the zero Value: got %s, %v", r.Value(), r.Err())
		}
	})
}
