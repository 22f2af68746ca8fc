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
	"bytes"
	"strings"
	"testing"

	"github.com/ajroetker/go-qsort/internal/hostinfo"
	"github.com/ajroetker/go-qsort/internal/workerpool"
	"github.com/ajroetker/go-qsort/qsort"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRun(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	for _, inputType := range []string{"random", "sorted_small_to_large"} {
		for _, comparison := range []string{"less", "greater"} {
			cfg := DefaultConfig()
			cfg.InputType = inputType
			cfg.Comparison = comparison
			cfg.Size = 3000
			cfg.Algorithms = []string{"all"}

			r, err := NewRunner(cfg, pool)
			require.NoError(t, err)
			report, err := r.Run()
			require.NoError(t, err)

			assert.True(t, report.Verified())
			assert.Len(t, report.Results, len(AlgorithmNames()))
			assert.Equal(t, 3000, report.Size)
		}
	}
}

func TestNewRunnerValidation(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	tests := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"input type", func(c *Config) { c.InputType = "shuffled" }, ErrInvalidInputType},
		{"size", func(c *Config) { c.Size = -5 }, ErrInvalidSize},
		{"comparison", func(c *Config) { c.Comparison = "lesser" }, ErrInvalidComparison},
		{"algorithm", func(c *Config) { c.Algorithms = []string{"quick"} }, ErrUnknownAlgorithm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			_, err := NewRunner(cfg, pool)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := NewRunner(DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestTimeSortDetectsUnorderedOutput(t *testing.T) {
	broken := Algorithm{Name: "noop", Title: "No-op", Sort: func([]int, qsort.Less[int]) {}}
	res := timeSort(broken, []int{3, 2, 1}, Less.Func())
	assert.False(t, res.Verified)

	res = timeSort(broken, []int{1, 2, 3}, Less.Func())
	assert.True(t, res.Verified)
}

func TestReportText(t *testing.T) {
	report := &Report{
		InputType:  InputRandom,
		Size:       100000,
		Comparison: Less,
		Results: []Result{
			{Algorithm: "median3", Title: "Median of three", Duration: 7215033, Verified: true},
			{Algorithm: "first", Title: "First", Duration: 2500000, Verified: false},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	want := strings.Join([]string{
		"Testing quicksort: random 100,000 numbers less",
		separator,
		"Median of three:",
		"Runtime: 7215033ns, 7ms",
		"Verified: 1",
		separator,
		"First:",
		"Runtime: 2500000ns, 2ms",
		"Verified: 0",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
	assert.False(t, report.Verified())
}

func TestReportJSON(t *testing.T) {
	report := &Report{
		Host:       &hostinfo.HostInfo{GoVersion: "go1.26", OS: "linux", Arch: "amd64"},
		InputType:  InputSorted,
		Size:       10,
		Comparison: Greater,
		Seed:       7,
		Results:    []Result{{Algorithm: "middle", Title: "Middle", Duration: 1500, Verified: true}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "sorted_small_to_large", decoded["input_type"])
	assert.Equal(t, "greater", decoded["comparison"])
	assert.EqualValues(t, 10, decoded["size"])

	results := decoded["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "middle", first["algorithm"])
	assert.EqualValues(t, 1500, first["duration_ns"])
	assert.Equal(t, true, first["verified"])

	host := decoded["host"].(map[string]any)
	assert.Equal(t, "linux", host["os"])
}
