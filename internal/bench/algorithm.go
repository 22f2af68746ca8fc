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

package bench

import (
	"strings"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/pkg/errors"
)

// Algorithm is one sorting routine the harness can time.
type Algorithm struct {
	// Name is the identifier used on the command line.
	Name string
	// Title is printed in reports.
	Title string
	Sort  func(data []int, less qsort.Less[int])
}

// DefaultAlgorithms are the quicksort variants, in report order.
var DefaultAlgorithms = []string{"median3", "middle", "first"}

var registry = []Algorithm{
	{Name: "median3", Title: qsort.PivotMedianOf3.Title(), Sort: qsort.QuickSortMedian3[int]},
	{Name: "middle", Title: qsort.PivotMiddle.Title(), Sort: qsort.QuickSortMiddle[int]},
	{Name: "first", Title: qsort.PivotFirst.Title(), Sort: qsort.QuickSortFirst[int]},
	{Name: "insertion", Title: "Insertion sort", Sort: qsort.InsertionSortFunc[int]},
	{Name: "heap", Title: "Heap sort", Sort: qsort.HeapSortFunc[int]},
	{Name: "merge", Title: "Merge sort", Sort: qsort.MergeSortFunc[int]},
	{Name: "shell", Title: "Shell sort", Sort: qsort.ShellSortFunc[int]},
}

// AlgorithmNames lists every registered algorithm name.
func AlgorithmNames() []string {
	names := make([]string, len(registry))
	for i, alg := range registry {
		names[i] = alg.Name
	}
	return names
}

// Lookup resolves algorithm names in order. "all" expands to every
// registered algorithm at its position; repeated algorithms are kept once.
func Lookup(names []string) ([]Algorithm, error) {
	algs := make([]Algorithm, 0, len(names))
	seen := make(map[string]bool, len(registry))
	add := func(alg Algorithm) {
		if !seen[alg.Name] {
			seen[alg.Name] = true
			algs = append(algs, alg)
		}
	}

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case "all":
			for _, alg := range registry {
				add(alg)
			}
			continue
		}
		alg, ok := find(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
		}
		add(alg)
	}
	if len(algs) == 0 {
		return nil, errors.Wrap(ErrUnknownAlgorithm, "no algorithm selected")
	}
	return algs, nil
}

func find(name string) (Algorithm, bool) {
	for _, alg := range registry {
		if alg.Name == name {
			return alg, true
		}
	}
	return Algorithm{}, false
}
