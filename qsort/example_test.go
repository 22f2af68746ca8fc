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

package qsort_test

import (
	"fmt"

	"github.com/ajroetker/go-qsort/qsort"
)

func ExampleSortFunc() {
	data := []int{1, 2, 3, 4, 5}
	qsort.SortFunc(data, qsort.Descending[int])
	fmt.Println(data)
	// Output: [5 4 3 2 1]
}

func ExampleQuickSort() {
	for _, pivot := range qsort.Pivots {
		data := []int{5, 3, 8, 1, 9, 2}
		if err := qsort.QuickSort(data, qsort.Ascending[int], pivot); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(pivot.Title(), data)
	}
	// Output:
	// Median of three [1 2 3 5 8 9]
	// Middle [1 2 3 5 8 9]
	// First [1 2 3 5 8 9]
}

func ExampleSelect() {
	data := []int{7, 2, 9, 4, 1}
	if err := qsort.Select(data, 3); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data[2])

	fmt.Println(qsort.Select(data, 6))
	// Output:
	// 4
	// k=6, len=5: rank out of range
}
