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

// MergeSortFunc sorts data with top-down merge sort. It is stable and
// allocates one temporary buffer of len(data) elements.
func MergeSortFunc[T any](data []T, less Less[T]) {
	if len(data) <= 1 {
		return
	}
	tmp := make([]T, len(data))
	mergeSortRange(data, less, tmp, 0, len(data)-1)
}

func mergeSortRange[T any](data []T, less Less[T], tmp []T, left, right int) {
	if left >= right {
		return
	}
	center := left + (right-left)/2
	mergeSortRange(data, less, tmp, left, center)
	mergeSortRange(data, less, tmp, center+1, right)
	merge(data, less, tmp, left, center+1, right)
}

// merge combines the sorted runs data[leftPos..rightPos-1] and
// data[rightPos..rightEnd] through tmp. Ties take the left run first.
func merge[T any](data []T, less Less[T], tmp []T, leftPos, rightPos, rightEnd int) {
	leftEnd := rightPos - 1
	start := leftPos
	pos := leftPos

	for leftPos <= leftEnd && rightPos <= rightEnd {
		if !less(data[rightPos], data[leftPos]) {
			tmp[pos] = data[leftPos]
			leftPos++
		} else {
			tmp[pos] = data[rightPos]
			rightPos++
		}
		pos++
	}
	pos += copy(tmp[pos:], data[leftPos:leftEnd+1])
	copy(tmp[pos:], data[rightPos:rightEnd+1])

	copy(data[start:rightEnd+1], tmp[start:rightEnd+1])
}
