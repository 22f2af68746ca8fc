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
	"strings"

	"github.com/pkg/errors"
)

// Pivot selects how a quicksort variant picks its partitioning element.
type Pivot int

const (
	// PivotMedianOf3 uses the median of the first, middle and last elements.
	PivotMedianOf3 Pivot = iota

	// PivotFirst uses the first element of the range.
	PivotFirst

	// PivotMiddle uses the element at the center of the range.
	PivotMiddle
)

// Pivots lists every supported strategy.
var Pivots = []Pivot{PivotMedianOf3, PivotMiddle, PivotFirst}

// String returns the short name of the strategy, as accepted by ParsePivot.
func (p Pivot) String() string {
	switch p {
	case PivotMedianOf3:
		return "median3"
	case PivotFirst:
		return "first"
	case PivotMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name of the strategy.
func (p Pivot) Title() string {
	switch p {
	case PivotMedianOf3:
		return "Median of three"
	case PivotFirst:
		return "First"
	case PivotMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// Valid reports whether p names a supported strategy.
func (p Pivot) Valid() bool {
	return p >= PivotMedianOf3 && p <= PivotMiddle
}

// ParsePivot maps a strategy name ("median3", "first", "middle") to its Pivot.
func ParsePivot(name string) (Pivot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "median3", "median", "median-of-three":
		return PivotMedianOf3, nil
	case "first":
		return PivotFirst, nil
	case "middle":
		return PivotMiddle, nil
	}
	return 0, errors.Wrapf(ErrUnknownPivot, "%q", name)
}

// median3 orders data[left], data[center] and data[right], hides the median
// at right-1 and returns a copy of it.
//
// On return data[left] is not after the pivot and data[right] is not before
// it. partitionSentinel relies on both to stop its scans without bound checks.
// The range must hold at least three elements.
func median3[T any](data []T, less Less[T], left, right int) T {
	center := left + (right-left)/2

	if less(data[center], data[left]) {
		data[left], data[center] = data[center], data[left]
	}
	if less(data[right], data[left]) {
		data[left], data[right] = data[right], data[left]
	}
	if less(data[right], data[center]) {
		data[center], data[right] = data[right], data[center]
	}

	data[center], data[right-1] = data[right-1], data[center]
	return data[right-1]
}

// hideFirst moves data[left] to the anchor at right.
func hideFirst[T any](data []T, left, right int) {
	data[left], data[right] = data[right], data[left]
}

// hideMiddle moves the center element to the anchor at right.
func hideMiddle[T any](data []T, left, right int) {
	center := left + (right-left)/2
	data[center], data[right] = data[right], data[center]
}
