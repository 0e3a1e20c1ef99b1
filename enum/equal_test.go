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

package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomoncle/smartenum/enum"
)

func TestEqualSameType(t *testing.T) {
	for _, a := range enum.Members[*Priority]() {
		for _, b := range enum.Members[*Priority]() {
			assert.Equal(t, a.Value() == b.Value(), enum.Equal(a, b), "%s vs %s", a, b)
		}
	}

	copyOfLow := &Priority{Base: enum.New(1, "Low"), Weight: 0.5}
	assert.True(t, enum.Equal(Low, copyOfLow), "equality is by value, not identity")
}

func TestEqualAcrossTypes(t *testing.T) {
	assert.Equal(t, Active.Value(), Low.Value())
	assert.False(t, enum.Equal(Active, Low))
	assert.False(t, Active.Equal(Low))
	assert.False(t, enum.Equal(Red, &Color{Base: enum.New(10, "Red")}), "value and pointer types differ")
}

func TestEqualNil(t *testing.T) {
	var nilStatus *Status
	assert.False(t, enum.Equal(Active, nil))
	assert.False(t, enum.Equal(nil, Active))
	assert.False(t, enum.Equal(Active, nilStatus))
	assert.False(t, Active.Equal(nil))
	assert.True(t, enum.Equal(nil, nil))
	assert.True(t, enum.Equal(nilStatus, nil))
}

func TestHash(t *testing.T) {
	for _, a := range enum.Members[*Priority]() {
		for _, b := range enum.Members[*Priority]() {
			if enum.Equal(a, b) {
				assert.Equal(t, enum.Hash(a), enum.Hash(b))
			}
		}
	}
	assert.Equal(t, enum.Hash(Active), enum.Hash(Low), "hash only covers the value")
	assert.NotEqual(t, enum.Hash(Active), enum.Hash(Inactive))
	assert.Zero(t, enum.Hash(nil))
}

func TestBase(t *testing.T) {
	b := enum.New(5, "Five")
	assert.Equal(t, 5, b.Value())
	assert.Equal(t, "Five", b.Name())
	assert.Equal(t, "Five", b.String())
	assert.False(t, b.IsZero())
	assert.True(t, enum.Base{}.IsZero())
}
