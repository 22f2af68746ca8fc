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
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config describes one benchmark run.
type Config struct {
	InputType  string   `toml:"InputType"`
	Size       int      `toml:"Size"`
	Comparison string   `toml:"Comparison"`
	Algorithms []string `toml:"Algorithms"`
	Seed       int64    `toml:"Seed"`
	Workers    int      `toml:"Workers"`
}

// FileConfig is the layout of a TOML configuration file.
type FileConfig struct {
	Bench Config `toml:"Bench"`
}

// DefaultConfig returns the settings used when neither a file nor flags
// override them.
func DefaultConfig() Config {
	return Config{
		InputType:  string(InputRandom),
		Size:       100000,
		Comparison: string(Less),
		Algorithms: append([]string(nil), DefaultAlgorithms...),
		Seed:       1,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	tree, err := toml.LoadBytes(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	var fc FileConfig
	if err = tree.Unmarshal(&fc); err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}

	cfg := DefaultConfig()
	if fc.Bench.InputType != "" {
		cfg.InputType = fc.Bench.InputType
	}
	if tree.Has("Bench.Size") {
		cfg.Size = fc.Bench.Size
	}
	if fc.Bench.Comparison != "" {
		cfg.Comparison = fc.Bench.Comparison
	}
	if len(fc.Bench.Algorithms) > 0 {
		cfg.Algorithms = fc.Bench.Algorithms
	}
	if tree.Has("Bench.Seed") {
		cfg.Seed = fc.Bench.Seed
	}
	if tree.Has("Bench.Workers") {
		cfg.Workers = fc.Bench.Workers
	}
	return cfg, nil
}
