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

package main

import (
	"strconv"
	"strings"

	"github.com/ajroetker/go-qsort/internal/bench"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	// configFile defines an optional TOML file holding a [Bench] section
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` of a TOML file with a [Bench] section. Flags override values read from it.",
	}
	// inputType selects how the vector is filled
	inputType = cli.StringFlag{
		Name:  "input-type",
		Usage: "Input vector `type`: random or sorted_small_to_large.",
		Value: string(bench.InputRandom),
	}
	// size is the number of elements to sort
	size = cli.IntFlag{
		Name:  "size",
		Usage: "Number of `elements` in the input vector.",
		Value: bench.DefaultConfig().Size,
	}
	// comparison picks the sort order
	comparison = cli.StringFlag{
		Name:  "comparison",
		Usage: "Sort `order`: less (ascending) or greater (descending).",
		Value: string(bench.Less),
	}
	// algorithms lists what to time, in report order
	algorithms = cli.StringFlag{
		Name: "algorithms",
		Usage: "Comma-separated `names` of the algorithms to time; all expands to every one. Known: " +
			strings.Join(bench.AlgorithmNames(), ", ") + ".",
		Value: strings.Join(bench.DefaultAlgorithms, ","),
	}
	// seed makes random input reproducible
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for random input.",
		Value: bench.DefaultConfig().Seed,
	}
	// workers sets the size of the input generation pool
	workers = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of `goroutines` filling the input vector. 0 uses GOMAXPROCS. Sorting always runs on one goroutine.",
	}
	// format selects the report layout
	format = cli.StringFlag{
		Name:  "format",
		Usage: "Report `format`: text or json.",
		Value: formatText,
	}
	// noHost skips collecting host parameters
	noHost = cli.BoolFlag{
		Name:  "no-host",
		Usage: "Do not print host parameters with the report.",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,bench:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the bench package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configFile,
		inputType,
		size,
		comparison,
		algorithms,
		seed,
		workers,
		format,
		noHost,
		logLevel,
	}
}

// buildConfig layers, lowest priority first: defaults, the config file,
// the positional arguments and explicitly set flags.
func buildConfig(ctx *cli.Context) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if path := ctx.String(configFile.Name); path != "" {
		var err error
		cfg, err = bench.LoadConfig(path)
		if err != nil {
			return bench.Config{}, err
		}
		log.Debug("loaded config file", "path", path)
	}

	args := ctx.Args()
	switch len(args) {
	case 0:
	case 3:
		cfg.InputType = args[0]
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return bench.Config{}, errors.Wrapf(bench.ErrInvalidSize, "%q", args[1])
		}
		cfg.Size = n
		cfg.Comparison = args[2]
	default:
		return bench.Config{}, errors.Errorf("expected <input_type> <input_size> <comparison_type>, got %d arguments", len(args))
	}

	if ctx.IsSet(inputType.Name) {
		cfg.InputType = ctx.String(inputType.Name)
	}
	if ctx.IsSet(size.Name) {
		cfg.Size = ctx.Int(size.Name)
	}
	if ctx.IsSet(comparison.Name) {
		cfg.Comparison = ctx.String(comparison.Name)
	}
	if ctx.IsSet(algorithms.Name) {
		cfg.Algorithms = strings.Split(ctx.String(algorithms.Name), ",")
	}
	if ctx.IsSet(seed.Name) {
		cfg.Seed = ctx.Int64(seed.Name)
	}
	if ctx.IsSet(workers.Name) {
		cfg.Workers = ctx.Int(workers.Name)
	}
	return cfg, nil
}
