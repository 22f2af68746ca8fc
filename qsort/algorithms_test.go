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
	"math/rand"
	"slices"
	"testing"
)

var simpleAlgorithms = []struct {
	name   string
	sort   func([]int, Less[int])
	stable bool
}{
	{"insertion", InsertionSortFunc[int], true},
	{"heap", HeapSortFunc[int], false},
	{"merge", MergeSortFunc[int], true},
	{"shell", ShellSortFunc[int], false},
}

func TestSimpleAlgorithmsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for _, alg := range simpleAlgorithms {
		for _, n := range []int{0, 1, 2, 3, 10, 11, 64, 333, 1000} {
			for _, less := range []Less[int]{Ascending[int], Descending[int]} {
				input := randomInts(rng, n, 50)
				data := slices.Clone(input)
				alg.sort(data, less)
				checkSorted(t, alg.name, input, data, less)
			}
		}
	}
}

func TestSimpleAlgorithmsExamples(t *testing.T) {
	for _, alg := range simpleAlgorithms {
		data := []int{5, 3, 8, 1, 9, 2}
		alg.sort(data, Ascending[int])
		if !slices.Equal(data, []int{1, 2, 3, 5, 8, 9}) {
			t.Errorf("%s = %v, want [1 2 3 5 8 9]", alg.name, data)
		}

		data = []int{1, 2, 3, 4, 5}
		alg.sort(data, Descending[int])
		if !slices.Equal(data, []int{5, 4, 3, 2, 1}) {
			t.Errorf("%s(descending) = %v, want [5 4 3 2 1]", alg.name, data)
		}
	}
}

func TestStability(t *testing.T) {
	type item struct {
		key int
		seq int
	}
	rng := rand.New(rand.NewSource(31))
	input := make([]item, 400)
	for i := range input {
		input[i] = item{key: rng.Intn(8), seq: i}
	}
	byKey := func(a, b item) bool { return a.key < b.key }

	stable := map[string]func([]item, Less[item]){
		"insertion": InsertionSortFunc[item],
		"merge":     MergeSortFunc[item],
	}
	for name, sortFn := range stable {
		data := slices.Clone(input)
		sortFn(data, byKey)
		for i := 1; i < len(data); i++ {
			if data[i].key < data[i-1].key {
				t.Fatalf("%s: not sorted at %d", name, i)
			}
			if data[i].key == data[i-1].key && data[i].seq < data[i-1].seq {
				t.Fatalf("%s: equal keys reordered at %d (seq %d before %d)", name, i, data[i-1].seq, data[i].seq)
			}
		}
	}
}

func TestInsertionSortRange(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	insertionSortRange(data, Ascending[int], 2, 6)
	want := []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}
	if !slices.Equal(data, want) {
		t.Errorf("insertionSortRange(2, 6) = %v, want %v", data, want)
	}

	// Empty range
	insertionSortRange(data, Ascending[int], 4, 3)
	if !slices.Equal(data, want) {
		t.Errorf("insertionSortRange on empty range changed data: %v", data)
	}
}

func TestIsSortedFunc(t *testing.T) {
	tests := []struct {
		data []int
		less Less[int]
		want bool
	}{
		{nil, Ascending[int], true},
		{[]int{1}, Ascending[int], true},
		{[]int{1, 1, 2}, Ascending[int], true},
		{[]int{2, 1}, Ascending[int], false},
		{[]int{2, 1}, Descending[int], true},
		{[]int{3, 3, 1, 2}, Descending[int], false},
	}
	for _, tt := range tests {
		if got := IsSortedFunc(tt.data, tt.less); got != tt.want {
			t.Errorf("IsSortedFunc(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
