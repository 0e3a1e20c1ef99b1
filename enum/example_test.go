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
	"fmt"

	"github.com/tomoncle/smartenum/enum"
)

func ExampleFromValue() {
	s, ok := enum.FromValue[*Status](1)
	fmt.Println(s, ok)

	_, ok = enum.FromValue[*Status](3)
	fmt.Println(ok)
	// Output:
	// Active true
	// false
}

func ExampleRegistry_FromName() {
	p, ok := priorities.FromName("High")
	fmt.Println(p.Value(), p.Weight, ok)
	// Output: 3 2 true
}
