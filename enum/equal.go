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
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are members of the same concrete type with
// the same value. A nil member only equals another nil member.
func Equal(a, b Member) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Value() == b.Value()
}

// Hash returns a hash of m derived from its value alone. Members of different
// types with the same value collide; Equal members always hash alike.
func Hash(m Member) uint64 {
	if isNil(m) {
		return 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(m.Value())))
	return xxhash.Sum64(buf[:])
}

func isNil(m any) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
