// Copyright 2025 go-qsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import "cmp"

// Less reports whether a must sort strictly before b.
type Less[T any] func(a, b T) bool

// Ascending orders values from smallest to largest.
func Ascending[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Descending orders values from largest to smallest.
func Descending[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// Reverse returns a comparator with the opposite order of less.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}
