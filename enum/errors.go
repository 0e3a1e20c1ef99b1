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
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches every error reported for a badly declared type.
	ErrMalformed = errors.New("enum: malformed enumeration")
	// ErrNotFound matches NotFoundError.
	ErrNotFound = errors.New("enum: member not found")
)

// DuplicateValueError reports two declared members sharing a value.
type DuplicateValueError struct {
	Type   string
	Value  int
	First  string
	Second string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("enum: %s declares value %d twice (%q and %q)", e.Type, e.Value, e.First, e.Second)
}

func (e *DuplicateValueError) Is(target error) bool { return target == ErrMalformed }

// DuplicateNameError reports two declared members sharing a name. It is only
// produced by registries declared WithStrictNames.
type DuplicateNameError struct {
	Type   string
	Name   string
	First  int
	Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("enum: %s declares name %q twice (values %d and %d)", e.Type, e.Name, e.First, e.Second)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrMalformed }

// NilMemberError reports a nil entry in a declared member list.
type NilMemberError struct {
	Type  string
	Index int
}

func (e *NilMemberError) Error() string {
	return fmt.Sprintf("enum: %s declares a nil member at index %d", e.Type, e.Index)
}

func (e *NilMemberError) Is(target error) bool { return target == ErrMalformed }

// NotFoundError is raised by the Must* lookups.
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enum: %s has no member %s", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
