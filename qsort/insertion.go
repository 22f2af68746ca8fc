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

// InsertionSortFunc sorts data in-place with insertion sort.
// The sort is stable: elements that compare equal keep their input order.
func InsertionSortFunc[T any](data []T, less Less[T]) {
	insertionSortRange(data, less, 0, len(data)-1)
}

// insertionSortRange sorts the inclusive range data[left..right].
// An empty range (right < left) is a no-op.
func insertionSortRange[T any](data []T, less Less[T], left, right int) {
	for p := left + 1; p <= right; p++ {
		tmp := data[p]
		j := p
		for j > left && less(tmp, data[j-1]) {
			data[j] = data[j-1]
			j--
		}
		data[j] = tmp
	}
}
