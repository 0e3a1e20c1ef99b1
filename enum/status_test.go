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

import "github.com/tomoncle/smartenum/enum"

type Status struct {
	enum.Base
}

var (
	Active   = &Status{enum.New(1, "Active")}
	Inactive = &Status{enum.New(2, "Inactive")}
)

var statuses = enum.Declare(func() []*Status { return []*Status{Active, Inactive} })

func (*Status) Enumeration() *enum.Registry[*Status] { return statuses }

func (s *Status) Equal(other enum.Member) bool { return enum.Equal(s, other) }

// Priority shares values with Status on purpose.
type Priority struct {
	enum.Base
	Weight float64
}

var (
	Low    = &Priority{Base: enum.New(1, "Low"), Weight: 0.5}
	Medium = &Priority{Base: enum.New(2, "Medium"), Weight: 1}
	High   = &Priority{Base: enum.New(3, "High"), Weight: 2}
)

var priorities = enum.Declare(func() []*Priority { return []*Priority{Low, Medium, High} })

func (*Priority) Enumeration() *enum.Registry[*Priority] { return priorities }

// Color members are plain values rather than pointers.
type Color struct {
	enum.Base
	Hex string
}

var (
	Red   = Color{Base: enum.New(10, "Red"), Hex: "#ff0000"}
	Green = Color{Base: enum.New(20, "Green"), Hex: "#00ff00"}
)

var colors = enum.Declare(func() []Color { return []Color{Red, Green} }, enum.WithName("Color"))

func (Color) Enumeration() *enum.Registry[Color] { return colors }
