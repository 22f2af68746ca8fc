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
	"math/rand"
	"strings"

	"github.com/ajroetker/go-qsort/internal/workerpool"
	"github.com/pkg/errors"
)

// InputType selects how the benchmark vector is filled.
type InputType string

const (
	// InputRandom fills the vector with non-negative pseudo-random ints.
	InputRandom InputType = "random"

	// InputSorted fills the vector with 1, 2, ..., n.
	InputSorted InputType = "sorted_small_to_large"
)

// generateBatchSize is the number of elements each worker fills per grab.
// Every batch seeds its own source, so the output does not depend on the
// number of workers.
const generateBatchSize = 1 << 16

// ParseInputType validates an input type name.
func ParseInputType(s string) (InputType, error) {
	switch t := InputType(strings.TrimSpace(s)); t {
	case InputRandom, InputSorted:
		return t, nil
	}
	return "", errors.Wrapf(ErrInvalidInputType, "%q", s)
}

// Generate returns a new vector of n elements of the given type. Random
// vectors are deterministic for a given seed.
func Generate(pool *workerpool.Pool, t InputType, n int, seed int64) ([]int, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%d", n)
	}

	data := make([]int, n)
	switch t {
	case InputRandom:
		pool.ParallelForBatched(n, generateBatchSize, func(batch, start, end int) {
			rng := rand.New(rand.NewSource(seed + int64(batch)))
			for i := start; i < end; i++ {
				data[i] = int(rng.Int31())
			}
		})
	case InputSorted:
		pool.ParallelForBatched(n, generateBatchSize, func(_, start, end int) {
			for i := start; i < end; i++ {
				data[i] = i + 1
			}
		})
	default:
		return nil, errors.Wrapf(ErrInvalidInputType, "%q", string(t))
	}
	return data, nil
}
