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
	"fmt"
	"io"

	"github.com/ajroetker/go-qsort/internal/hostinfo"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

const separator = "---------------------------"

// Report collects the results of one run.
type Report struct {
	Host       *hostinfo.HostInfo `json:"host,omitempty"`
	InputType  InputType          `json:"input_type"`
	Size       int                `json:"size"`
	Comparison Comparison         `json:"comparison"`
	Seed       int64              `json:"seed"`
	Results    []Result           `json:"results"`
}

// Verified reports whether every algorithm produced ordered output.
func (r *Report) Verified() bool {
	for _, res := range r.Results {
		if !res.Verified {
			return false
		}
	}
	return true
}

// WriteText writes the report in the plain layout:
//
//	Testing quicksort: random 100,000 numbers less
//	---------------------------
//	Median of three:
//	Runtime: 7215033ns, 7ms
//	Verified: 1
func (r *Report) WriteText(w io.Writer) error {
	if r.Host != nil {
		if _, err := fmt.Fprintf(w, "Host: %s\n", r.Host); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Testing quicksort: %s %s numbers %s\n",
		r.InputType, humanize.Comma(int64(r.Size)), r.Comparison)
	if err != nil {
		return err
	}

	for _, res := range r.Results {
		verified := 0
		if res.Verified {
			verified = 1
		}
		_, err = fmt.Fprintf(w, "%s\n%s:\nRuntime: %dns, %dms\nVerified: %d\n",
			separator, res.Title, res.Duration.Nanoseconds(), res.Duration.Milliseconds(), verified)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as one indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
