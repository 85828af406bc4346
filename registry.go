// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc

import (
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// Method binds a name to a Handler.
type Method struct {
	Name    string
	Handler Handler
}

// Registry maps method names to handlers.
//
// A Registry is filled before it is handed to NewProcessor and is read only
// afterwards. Registering the same name twice is allowed; lookups resolve to
// the first registration.
type Registry struct {
	methods []Method
	index   map[string]Handler
	sealed  atomic.Bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]Handler),
	}
}

// Register binds name to h.
//
// It fails once the registry is used by a Processor.
func (r *Registry) Register(name string, h Handler) error {
	if r.sealed.Load() {
		return fmt.Errorf("register %q: %w", name, ErrRegistrySealed)
	}
	if name == "" {
		return ErrEmptyMethodName
	}
	if h == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilHandler)
	}

	if r.index == nil {
		r.index = make(map[string]Handler)
	}
	r.methods = append(r.methods, Method{Name: name, Handler: h})
	if _, found := r.index[name]; !found {
		r.index[name] = h
	}

	return nil
}

// RegisterMethods registers each of methods in order, and returns the
// combined errors of the registrations that failed.
func (r *Registry) RegisterMethods(methods ...Method) error {
	var err error
	for _, m := range methods {
		err = multierr.Append(err, r.Register(m.Name, m.Handler))
	}
	return err
}

// Lookup returns the first handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, found := r.index[name]
	return h, found
}

// Methods returns the registered method names, once each, in registration order.
func (r *Registry) Methods() []string {
	names := make([]string, 0, len(r.index))
	seen := make(map[string]bool, len(r.index))
	for _, m := range r.methods {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		names = append(names, m.Name)
	}
	return names
}

// seal makes the registry read only.
func (r *Registry) seal() { r.sealed.Store(true) }
