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
	"time"

	"github.com/ajroetker/go-qsort/internal/hostinfo"
	"github.com/ajroetker/go-qsort/internal/workerpool"
	"github.com/ajroetker/go-qsort/qsort"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

var log = logger.GetOrCreate("bench")

// Result is the outcome of one timed sort.
type Result struct {
	Algorithm string        `json:"algorithm"`
	Title     string        `json:"title"`
	Duration  time.Duration `json:"duration_ns"`
	Verified  bool          `json:"verified"`
}

// Runner generates one input vector and times each configured algorithm on
// its own copy of it. Sorts run one after another on the calling goroutine.
type Runner struct {
	cfg        Config
	inputType  InputType
	comparison Comparison
	algorithms []Algorithm
	pool       *workerpool.Pool
	host       *hostinfo.HostInfo
}

// NewRunner validates cfg and prepares a runner. The pool is only used to
// generate input and is owned by the caller.
func NewRunner(cfg Config, pool *workerpool.Pool) (*Runner, error) {
	if pool == nil {
		return nil, errors.New("nil worker pool")
	}

	inputType, err := ParseInputType(cfg.InputType)
	if err != nil {
		return nil, err
	}
	if cfg.Size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%d", cfg.Size)
	}
	comparison, err := ParseComparison(cfg.Comparison)
	if err != nil {
		return nil, err
	}
	algorithms, err := Lookup(cfg.Algorithms)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:        cfg,
		inputType:  inputType,
		comparison: comparison,
		algorithms: algorithms,
		pool:       pool,
	}, nil
}

// WithHost attaches host information to the reports produced by Run.
func (r *Runner) WithHost(host *hostinfo.HostInfo) *Runner {
	r.host = host
	return r
}

// Run generates the input and times every algorithm. A report is returned
// even when verification fails, together with ErrVerificationFailed.
func (r *Runner) Run() (*Report, error) {
	start := time.Now()
	input, err := Generate(r.pool, r.inputType, r.cfg.Size, r.cfg.Seed)
	if err != nil {
		return nil, err
	}
	log.Debug("input generated",
		"type", string(r.inputType),
		"size", r.cfg.Size,
		"workers", r.pool.NumWorkers(),
		"elapsed", time.Since(start))

	report := &Report{
		Host:       r.host,
		InputType:  r.inputType,
		Size:       r.cfg.Size,
		Comparison: r.comparison,
		Seed:       r.cfg.Seed,
		Results:    make([]Result, 0, len(r.algorithms)),
	}

	less := r.comparison.Func()
	data := make([]int, len(input))
	failed := 0
	for _, alg := range r.algorithms {
		copy(data, input)
		res := timeSort(alg, data, less)
		if !res.Verified {
			failed++
			log.Warn("sort produced unordered output", "algorithm", alg.Name)
		}
		log.Debug("algorithm done", "algorithm", alg.Name, "duration", res.Duration)
		report.Results = append(report.Results, res)
	}

	if failed > 0 {
		return report, errors.Wrapf(ErrVerificationFailed, "%d of %d algorithms", failed, len(r.algorithms))
	}
	return report, nil
}

// timeSort sorts data in place with alg and verifies the order.
func timeSort(alg Algorithm, data []int, less qsort.Less[int]) Result {
	begin := time.Now()
	alg.Sort(data, less)
	elapsed := time.Since(begin)

	return Result{
		Algorithm: alg.Name,
		Title:     alg.Title,
		Duration:  elapsed,
		Verified:  qsort.IsSortedFunc(data, less),
	}
}
