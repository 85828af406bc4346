// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"go.lsp.dev/jsonrpc"
	"go.lsp.dev/jsonrpc/jsonvalue"
)

func nopHandler(context.Context, jsonvalue.Value) jsonrpc.Reply {
	return jsonrpc.Result(jsonvalue.Null())
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name    string
		handler jsonrpc.Handler
		wantErr error
	}{
		"valid": {
			name:    "ping",
			handler: nopHandler,
		},
		"empty name": {
			name:    "",
			handler: nopHandler,
			wantErr: jsonrpc.ErrEmptyMethodName,
		},
		"nil handler": {
			name:    "ping",
			wantErr: jsonrpc.ErrNilHandler,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := jsonrpc.NewRegistry()
			err := reg.Register(tt.name, tt.handler)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register(%q): got error %v, want %v", tt.name, err, tt.wantErr)
			}

			_, found := reg.Lookup(tt.name)
			if found != (tt.wantErr == nil) {
				t.Fatalf("Lookup(%q): found = %t", tt.name, found)
			}
		})
	}
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var reg jsonrpc.Registry
	if _, found := reg.Lookup("ping"); found {
		t.Fatal("Lookup: found a method in an empty registry")
	}
	if err := reg.Register("ping", nopHandler); err != nil {
		t.Fatal(err)
	}
	if _, found := reg.Lookup("ping"); !found {
		t.Fatal("Lookup: registered method not found")
	}
}

func TestRegistryDuplicates(t *testing.T) {
	t.Parallel()

	reg := jsonrpc.NewRegistry()
	for _, name := range []string{"b", "a", "b", "c", "a"} {
		name := name
		if err := reg.Register(name, func(context.Context, jsonvalue.Value) jsonrpc.Reply {
			return jsonrpc.Result(jsonvalue.String(name))
		}); err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff([]string{"b", "a", "c"}, reg.Methods()); diff != "" {
		t.Errorf("Methods(): (-want +got)\n%s", diff)
	}

	p := jsonrpc.NewProcessor(reg, jsonrpc.WithFlags(jsonrpc.OrderedResponse))
	got := p.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","method":"b","id":1}`))
	if diff := cmp.Diff(`{"jsonrpc":"2.0","result":"b","id":1}`, string(got)); diff != "" {
		t.Errorf("Handle: (-want +got)\n%s", diff)
	}
}

func TestRegistrySealed(t *testing.T) {
	t.Parallel()

	reg := jsonrpc.NewRegistry()
	if err := reg.Register("ping", nopHandler); err != nil {
		t.Fatal(err)
	}
	_ = jsonrpc.NewProcessor(reg)

	err := reg.Register("pong", nopHandler)
	if !errors.Is(err, jsonrpc.ErrRegistrySealed) {
		t.Fatalf("Register after NewProcessor: got %v, want %v", err, jsonrpc.ErrRegistrySealed)
	}
	if _, found := reg.Lookup("pong"); found {
		t.Fatal("Lookup: method registered into a sealed registry")
	}
}

func TestRegistryRegisterMethods(t *testing.T) {
	t.Parallel()

	reg := jsonrpc.NewRegistry()
	err := reg.RegisterMethods(
		jsonrpc.Method{Name: "one", Handler: nopHandler},
		jsonrpc.Method{Name: "", Handler: nopHandler},
		jsonrpc.Method{Name: "two", Handler: nopHandler},
		jsonrpc.Method{Name: "three"},
	)

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("RegisterMethods: got %d errors, want 2: %v", len(errs), err)
	}
	if !errors.Is(errs[0], jsonrpc.ErrEmptyMethodName) {
		t.Errorf("first error: got %v, want %v", errs[0], jsonrpc.ErrEmptyMethodName)
	}
	if !errors.Is(errs[1], jsonrpc.ErrNilHandler) {
		t.Errorf("second error: got %v, want %v", errs[1], jsonrpc.ErrNilHandler)
	}

	if diff := cmp.Diff([]string{"one", "two"}, reg.Methods()); diff != "" {
		t.Errorf("Methods(): (-want +got)\n%s", diff)
	}
}
