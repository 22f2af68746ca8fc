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

// Select places the k-th smallest element of data (k is 1-based) at data[k-1].
// Elements before k-1 are not greater and elements after it are not smaller,
// but neither side is otherwise sorted.
func Select[T cmp.Ordered](data []T, k int) error {
	return SelectFunc(data, k, Ascending[T])
}

// SelectFunc is Select under the order defined by less.
// It returns ErrRankOutOfRange, leaving data untouched, if k is not in
// [1, len(data)].
func SelectFunc[T any](data []T, k int, less Less[T]) error {
	if k < 1 || k > len(data) {
		return errors.Wrapf(ErrRankOutOfRange, "k=%d, len=%d", k, len(data))
	}
	selectRange(data, less, 0, len(data)-1, k)
	return nil
}

// selectRange narrows data[left..right] around rank k using median-of-three
// partitioning until the range is small enough for insertion sort or the
// pivot lands on index k-1.
func selectRange[T any](data []T, less Less[T], left, right, k int) {
	for left+Cutoff <= right {
		p := partitionSentinel(data, less, left, right, median3(data, less, left, right))

		switch {
		case k <= p:
			right = p - 1
		case k > p+1:
			left = p + 1
		default:
			return
		}
	}
	insertionSortRange(data, less, left, right)
}
