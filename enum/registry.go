/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package enum

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Options control how a registry validates its members.
type Options struct {
	// Name is used in diagnostics. Defaults to the Go type of the members.
	Name string

	// StrictNames turns duplicate member names into a malformed-type error.
	// Without it the first declared member wins FromName.
	StrictNames bool
}

// Option modifies Options.
type Option func(*Options)

// WithName sets the type name reported in errors and logs.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithStrictNames rejects member lists containing the same name twice.
func WithStrictNames() Option { return func(o *Options) { o.StrictNames = true } }

// Registry indexes the members of one concrete enumeration type. It is
// built on first use and read-only afterwards, so it is safe for concurrent
// use.
type Registry[T Member] struct {
	declare func() []T
	opt     Options

	once    sync.Once
	err     error
	members []T
	byValue map[int]T
	byName  map[string]T
}

// Declare creates the registry for a concrete type. members returns the full
// closed set in declaration order; it runs once, on the first lookup.
func Declare[T Member](members func() []T, opts ...Option) *Registry[T] {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Name == "" {
		o.Name = reflect.TypeOf((*T)(nil)).Elem().String()
	}
	return &Registry[T]{declare: members, opt: o}
}

// Name returns the type name used in diagnostics.
func (r *Registry[T]) Name() string { return r.opt.Name }

// Load runs discovery if it has not run yet and returns the error of a
// malformed declaration. Lookups panic with the same error.
func (r *Registry[T]) Load() error {
	r.once.Do(r.build)
	return r.err
}

func (r *Registry[T]) load() {
	if err := r.Load(); err != nil {
		panic(err)
	}
}

func (r *Registry[T]) build() {
	defer func() {
		if p := recover(); p != nil {
			r.members, r.byValue, r.byName = nil, nil, nil
			r.fail(fmt.Errorf("%w: %s member list panicked: %v", ErrMalformed, r.opt.Name, p))
		}
	}()

	var declared []T
	if r.declare != nil {
		declared = r.declare()
	}

	byValue := make(map[int]T, len(declared))
	byName := make(map[string]T, len(declared))
	members := make([]T, 0, len(declared))
	for i, m := range declared {
		if isNil(m) {
			r.fail(&NilMemberError{Type: r.opt.Name, Index: i})
			return
		}
		if prev, ok := byValue[m.Value()]; ok {
			r.fail(&DuplicateValueError{Type: r.opt.Name, Value: m.Value(), First: prev.Name(), Second: m.Name()})
			return
		}
		if prev, ok := byName[m.Name()]; ok {
			if r.opt.StrictNames {
				r.fail(&DuplicateNameError{Type: r.opt.Name, Name: m.Name(), First: prev.Value(), Second: m.Value()})
				return
			}
			logger().WithField("enum", r.opt.Name).
				WithField("name", m.Name()).
				Warnf("duplicate member name, FromName resolves to value %d", prev.Value())
		} else {
			byName[m.Name()] = m
		}
		byValue[m.Value()] = m
		members = append(members, m)
	}

	r.members = members
	r.byValue = byValue
	r.byName = byName
	logger().WithField("enum", r.opt.Name).Debugf("registry built with %d members", len(members))
}

func (r *Registry[T]) fail(err error) {
	r.err = err
	logger().WithField("enum", r.opt.Name).Error(err.Error())
}

// FromValue returns the member declared with value v.
func (r *Registry[T]) FromValue(v int) (T, bool) {
	r.load()
	m, ok := r.byValue[v]
	return m, ok
}

// FromName returns the first declared member whose name equals s exactly.
func (r *Registry[T]) FromName(s string) (T, bool) {
	r.load()
	m, ok := r.byName[s]
	return m, ok
}

// MustFromValue is like FromValue but panics with a NotFoundError when v is
// not declared.
func (r *Registry[T]) MustFromValue(v int) T {
	m, ok := r.FromValue(v)
	if !ok {
		panic(&NotFoundError{Type: r.opt.Name, Key: "with value " + strconv.Itoa(v)})
	}
	return m
}

// MustFromName is like FromName but panics with a NotFoundError when s is
// not declared.
func (r *Registry[T]) MustFromName(s string) T {
	m, ok := r.FromName(s)
	if !ok {
		panic(&NotFoundError{Type: r.opt.Name, Key: fmt.Sprintf("named %q", s)})
	}
	return m
}

// Contains reports whether m is one of the declared members. Pointer
// members must be the declared instance itself; a copy with the same value
// is Equal to it but not contained. Other comparable members compare with
// ==, the rest fall back to Equal.
func (r *Registry[T]) Contains(m T) bool {
	if isNil(m) {
		return false
	}
	d, ok := r.FromValue(m.Value())
	if !ok {
		return false
	}
	if reflect.ValueOf(m).Comparable() {
		return any(d) == any(m)
	}
	return Equal(d, m)
}

// Members returns the declared members in declaration order.
func (r *Registry[T]) Members() []T {
	r.load()
	out := make([]T, len(r.members))
	copy(out, r.members)
	return out
}

// Values returns the declared values in declaration order.
func (r *Registry[T]) Values() []int {
	r.load()
	out := make([]int, len(r.members))
	for i, m := range r.members {
		out[i] = m.Value()
	}
	return out
}

// Names returns the declared names in declaration order.
func (r *Registry[T]) Names() []string {
	r.load()
	out := make([]string, len(r.members))
	for i, m := range r.members {
		out[i] = m.Name()
	}
	return out
}

// Len returns the number of declared members.
func (r *Registry[T]) Len() int {
	r.load()
	return len(r.members)
}

// FromValue looks v up in the registry of T.
func FromValue[T Enumerated[T]](v int) (T, bool) {
	var zero T
	return zero.Enumeration().FromValue(v)
}

// FromName looks s up in the registry of T.
func FromName[T Enumerated[T]](s string) (T, bool) {
	var zero T
	return zero.Enumeration().FromName(s)
}

// Members returns the declared members of T.
func Members[T Enumerated[T]]() []T {
	var zero T
	return zero.Enumeration().Members()
}
