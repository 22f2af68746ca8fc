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

import "github.com/pkg/errors"

var (
	// ErrInvalidInputType signals an input type other than random or sorted_small_to_large.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrInvalidSize signals a non-positive element count.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidComparison signals a comparison other than less or greater.
	ErrInvalidComparison = errors.New("invalid comparison type")

	// ErrUnknownAlgorithm signals an algorithm name missing from the registry.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrVerificationFailed is returned when at least one algorithm left its
	// vector out of order.
	ErrVerificationFailed = errors.New("verification failed")
)
