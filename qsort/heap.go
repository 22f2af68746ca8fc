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

// HeapSortFunc sorts data in-place with heapsort: O(n log n) in the worst
// case, O(1) extra space, not stable.
func HeapSortFunc[T any](data []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		percDown(data, less, i, n)
	}

	// Move the current maximum behind the shrinking heap
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		percDown(data, less, 0, end)
	}
}

// percDown restores the heap property below position i in a heap of n
// elements, shifting children up instead of swapping.
func percDown[T any](data []T, less Less[T], i, n int) {
	tmp := data[i]
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if child != n-1 && less(data[child], data[child+1]) {
			child++
		}
		if !less(tmp, data[child]) {
			break
		}
		data[i] = data[child]
		i = child
	}
	data[i] = tmp
}
