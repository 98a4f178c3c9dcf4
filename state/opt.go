// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "fmt"

// Opt is an optional value: either a value of T, or unset.
// The zero Opt is unset. Opts of the same T compare equal with ==
// when both are unset, or both are set to equal values.
type Opt[T comparable] struct {
	v  T
	ok bool
}

// Some returns an Opt set to v.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// None returns an unset Opt.
func None[T comparable]() Opt[T] {
	return Opt[T]{}
}

// Valid returns whether the Opt has a value.
func (o Opt[T]) Valid() bool {
	return o.ok
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Or returns the value if set, and def otherwise.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Set sets the value.
func (o *Opt[T]) Set(v T) {
	o.v = v
	o.ok = true
}

// Clear unsets the value.
func (o *Opt[T]) Clear() {
	*o = Opt[T]{}
}

func (o Opt[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprint(o.v)
}
