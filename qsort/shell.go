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

// ShellSortFunc sorts data in-place with Shell's original gap sequence
// n/2, n/4, ..., 1. Not stable.
func ShellSortFunc[T any](data []T, less Less[T]) {
	for gap := len(data) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(data); i++ {
			tmp := data[i]
			j := i
			for ; j >= gap && less(tmp, data[j-gap]); j -= gap {
				data[j] = data[j-gap]
			}
			data[j] = tmp
		}
	}
}
