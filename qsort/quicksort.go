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

import (
	"cmp"

	"github.com/pkg/errors"
)

// Cutoff is the largest range that quicksort and quickselect hand to
// insertion sort instead of partitioning.
const Cutoff = 10

// Sort sorts data in ascending order using median-of-three quicksort.
func Sort[T cmp.Ordered](data []T) {
	QuickSortMedian3(data, Ascending[T])
}

// SortFunc sorts data in-place in the order defined by less, using
// median-of-three quicksort. The sort is not stable.
func SortFunc[T any](data []T, less Less[T]) {
	QuickSortMedian3(data, less)
}

// QuickSort sorts data in-place with the quicksort variant selected by pivot.
// It returns ErrUnknownPivot, leaving data untouched, if pivot is not valid.
func QuickSort[T any](data []T, less Less[T], pivot Pivot) error {
	if !pivot.Valid() {
		return errors.Wrapf(ErrUnknownPivot, "pivot %d", int(pivot))
	}
	quickSortRange(data, less, 0, len(data)-1, pivot)
	return nil
}

// QuickSortMedian3 sorts data with median-of-three quicksort.
func QuickSortMedian3[T any](data []T, less Less[T]) {
	quickSortRange(data, less, 0, len(data)-1, PivotMedianOf3)
}

// QuickSortFirst sorts data with quicksort pivoting on the first element of
// each range. Already sorted input is its O(n^2) worst case.
func QuickSortFirst[T any](data []T, less Less[T]) {
	quickSortRange(data, less, 0, len(data)-1, PivotFirst)
}

// QuickSortMiddle sorts data with quicksort pivoting on the middle element of
// each range.
func QuickSortMiddle[T any](data []T, less Less[T]) {
	quickSortRange(data, less, 0, len(data)-1, PivotMiddle)
}

// quickSortRange sorts the inclusive range data[left..right].
//
// The smaller side of each partition is sorted recursively and the larger
// side by the next loop iteration, which bounds the stack to O(log n) frames.
func quickSortRange[T any](data []T, less Less[T], left, right int, pivot Pivot) {
	for left+Cutoff <= right {
		p := partition(data, less, left, right, pivot)

		if p-left < right-p {
			quickSortRange(data, less, left, p-1, pivot)
			left = p + 1
		} else {
			quickSortRange(data, less, p+1, right, pivot)
			right = p - 1
		}
	}

	// Ranges of Cutoff elements or fewer
	insertionSortRange(data, less, left, right)
}
