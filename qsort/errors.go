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

import "github.com/pkg/errors"

var (
	// ErrRankOutOfRange is returned by Select when k is not in [1, len(data)].
	ErrRankOutOfRange = errors.New("rank out of range")

	// ErrUnknownPivot is returned for a Pivot value or name that names no strategy.
	ErrUnknownPivot = errors.New("unknown pivot strategy")
)
