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

// partition selects a pivot for data[left..right] with the given strategy,
// partitions the range around it and returns the pivot's final index p.
// On return data[left..p-1] are not after data[p] and data[p+1..right] are
// not before it.
func partition[T any](data []T, less Less[T], left, right int, pivot Pivot) int {
	switch pivot {
	case PivotFirst:
		hideFirst(data, left, right)
		return partitionBounded(data, less, left, right)
	case PivotMiddle:
		hideMiddle(data, left, right)
		return partitionBounded(data, less, left, right)
	default:
		return partitionSentinel(data, less, left, right, median3(data, less, left, right))
	}
}

// partitionSentinel is the Hoare scan used after median3. The pivot sits at
// right-1, data[left] is not after it and data[right] is not before it.
//
// The scans carry no bound checks: i cannot pass right-1 because the pivot
// itself stops it, and j cannot pass left because data[left] stops it.
// Both scans use strict comparisons so runs of equal keys still advance.
func partitionSentinel[T any](data []T, less Less[T], left, right int, pivot T) int {
	i, j := left, right-1
	for {
		for i++; less(data[i], pivot); i++ {
		}
		for j--; less(pivot, data[j]); j-- {
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
	}

	// Restore pivot
	data[i], data[right-1] = data[right-1], data[i]
	return i
}

// partitionBounded is the Hoare scan for pivots hidden at right with no
// ordering guarantee on the range ends, so both cursors are bounded
// explicitly: i never moves past right and j never moves past left.
func partitionBounded[T any](data []T, less Less[T], left, right int) int {
	pivot := data[right]
	i, j := left-1, right
	for {
		for i++; i < right && less(data[i], pivot); i++ {
		}
		for j--; j > left && less(pivot, data[j]); j-- {
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
	}

	data[i], data[right] = data[right], data[i]
	return i
}
