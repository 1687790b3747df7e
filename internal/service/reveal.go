// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// openItem is the handle of the currently revealed list row. At most one
// instance exists at any time; it is owned exclusively by the registry.
type openItem struct {
	id    string
	close func()
}

// RevealRegistry coordinates revealable list rows so that at most one row is
// open at any time, even though rows appear, disappear, and toggle
// independently of each other.
//
// The registry is a best-effort coordination primitive, not a transactional
// one: it never fails, and a close callback that panics is the callback
// owner's responsibility. Create one per coordination scope with
// [NewRevealRegistry] and pass it by reference to every row; multiple
// independent registries may coexist (e.g. in tests).
//
// Not safe for concurrent use; rows are expected to register from a single
// event loop.
type RevealRegistry struct {
	current *openItem
}

// NewRevealRegistry returns an empty registry.
func NewRevealRegistry() *RevealRegistry {
	return &RevealRegistry{}
}

// RegisterOpen records the row id as the currently open item. If a different
// row is open, its stored close callback is invoked synchronously exactly
// once before the handle is replaced. Re-registering the same id only
// replaces the callback; the previous one is never invoked.
//
// The id must be unique among currently interactable rows.
func (r *RevealRegistry) RegisterOpen(id string, closeFn func()) {
	if r.current != nil && r.current.id != id && r.current.close != nil {
		r.current.close()
	}
	r.current = &openItem{id: id, close: closeFn}
}

// CloseCurrent invokes the stored close callback, if any, and clears the
// handle. Calling it with no open row is a no-op.
func (r *RevealRegistry) CloseCurrent() {
	if r.current == nil {
		return
	}
	if r.current.close != nil {
		r.current.close()
	}
	r.current = nil
}

// OpenID returns the id of the currently open row, if any.
func (r *RevealRegistry) OpenID() (string, bool) {
	if r.current == nil {
		return "", false
	}
	return r.current.id, true
}
