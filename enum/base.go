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

// Member is the contract every enumeration member satisfies.
type Member interface {
	Value() int
	Name() string
	String() string
}

// Enumerated is implemented by member types that know their own registry.
// Enumeration must not dereference its receiver: it is called on the zero
// value of T.
type Enumerated[T Member] interface {
	Member
	Enumeration() *Registry[T]
}

// Base holds the value and name of a member. Concrete enumeration types
// embed it and never change it after construction.
type Base struct {
	value int
	name  string
}

// New returns the Base for a member declared by a concrete type.
func New(value int, name string) Base {
	return Base{value: value, name: name}
}

// Value returns the member's integer value.
func (b Base) Value() int { return b.value }

// Name returns the member's name.
func (b Base) Name() string { return b.name }

// String returns the member's name.
func (b Base) String() string { return b.name }

// IsZero reports whether b was never initialised through New.
func (b Base) IsZero() bool { return b == Base{} }
