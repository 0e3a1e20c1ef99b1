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

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"

	"github.com/tomoncle/smartenum/enum"
)

// ErrUnknownMember is returned when a column holds a value or name that the
// enumeration does not declare.
var ErrUnknownMember = errors.New("types: unknown enum member")

// EnumValue stores a member as its integer value. The zero EnumValue is NULL.
type EnumValue[T enum.Enumerated[T]] struct {
	Member T
	Valid  bool
}

// ValueOf wraps m for storage by value.
func ValueOf[T enum.Enumerated[T]](m T) EnumValue[T] {
	return EnumValue[T]{Member: m, Valid: true}
}

// Value implements driver.Valuer for EnumValue.
func (e EnumValue[T]) Value() (driver.Value, error) {
	if !e.Valid {
		return nil, nil
	}
	return int64(e.Member.Value()), nil
}

// Scan implements sql.Scanner for EnumValue.
func (e *EnumValue[T]) Scan(value interface{}) error {
	var zero T
	if value == nil {
		e.Member, e.Valid = zero, false
		return nil
	}
	v, err := scanInt(value)
	if err != nil {
		return err
	}
	m, ok := zero.Enumeration().FromValue(v)
	if !ok {
		return fmt.Errorf("%w: %s has no value %d", ErrUnknownMember, zero.Enumeration().Name(), v)
	}
	e.Member, e.Valid = m, true
	return nil
}

// EnumName stores a member as its name. The zero EnumName is NULL.
type EnumName[T enum.Enumerated[T]] struct {
	Member T
	Valid  bool
}

// NameOf wraps m for storage by name.
func NameOf[T enum.Enumerated[T]](m T) EnumName[T] {
	return EnumName[T]{Member: m, Valid: true}
}

// Value implements driver.Valuer for EnumName.
func (e EnumName[T]) Value() (driver.Value, error) {
	if !e.Valid {
		return nil, nil
	}
	return e.Member.Name(), nil
}

// Scan implements sql.Scanner for EnumName.
func (e *EnumName[T]) Scan(value interface{}) error {
	var zero T
	if value == nil {
		e.Member, e.Valid = zero, false
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("types: cannot scan %T into an enum name", value)
	}
	m, ok := zero.Enumeration().FromName(s)
	if !ok {
		return fmt.Errorf("%w: %s has no name %q", ErrUnknownMember, zero.Enumeration().Name(), s)
	}
	e.Member, e.Valid = m, true
	return nil
}

func scanInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case []byte:
		return parseInt(string(v))
	case string:
		return parseInt(v)
	default:
		return 0, fmt.Errorf("types: cannot scan %T into an enum value", value)
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("types: enum value %q is not an integer: %w", s, err)
	}
	return n, nil
}
