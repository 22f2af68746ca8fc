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

// Comparison selects the order the benchmark sorts into.
type Comparison string

const (
	// Less sorts from smallest to largest.
	Less Comparison = "less"

	// Greater sorts from largest to smallest.
	Greater Comparison = "greater"
)

// ParseComparison validates a comparison name.
func ParseComparison(s string) (Comparison, error) {
	switch c := Comparison(strings.TrimSpace(s)); c {
	case Less, Greater:
		return c, nil
	}
	return "", errors.Wrapf(ErrInvalidComparison, "%q", s)
}

// Func returns the comparator for c.
func (c Comparison) Func() qsort.Less[int] {
	if c == Greater {
		return qsort.Descending[int]
	}
	return qsort.Ascending[int]
}
