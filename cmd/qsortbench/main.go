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

// Command qsortbench times the quicksort variants of package qsort, and
// optionally the other algorithms, on one generated vector and verifies the
// order of every result.
//
// Usage:
//
//	qsortbench random 100000 less
//	qsortbench --input-type sorted_small_to_large --size 20000 --comparison greater
//	qsortbench --config bench.toml --algorithms all --format json
package main

import (
	"io"
	"os"

	"github.com/ajroetker/go-qsort/internal/bench"
	"github.com/ajroetker/go-qsort/internal/hostinfo"
	"github.com/ajroetker/go-qsort/internal/workerpool"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var log = logger.GetOrCreate("qsortbench")

// appVersion should be populated at build time using ldflags
var appVersion = "undefined"

var helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} [<input_type> <input_size> <comparison_type>]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

func main() {
	_ = redirectLogOutput(os.Stderr)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "qsortbench"
	app.Version = appVersion
	app.Usage = "Times the median-of-three, middle and first element quicksort variants and verifies their output"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name: "The go-qsort Authors",
		},
	}
	app.Action = run
	return app
}

func run(ctx *cli.Context) error {
	if err := logger.SetLogLevel(ctx.String(logLevel.Name)); err != nil {
		return errors.Wrap(err, "set log level")
	}
	if err := redirectLogOutput(ctx.App.ErrWriter); err != nil {
		return errors.Wrap(err, "set log observer")
	}

	outFormat := ctx.String(format.Name)
	if outFormat != formatText && outFormat != formatJSON {
		return errors.Errorf("invalid format %q, use %s or %s", outFormat, formatText, formatJSON)
	}

	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	runner, err := bench.NewRunner(cfg, pool)
	if err != nil {
		return err
	}
	if !ctx.Bool(noHost.Name) {
		runner.WithHost(hostinfo.Get())
	}

	log.Info("starting benchmark",
		"input", cfg.InputType,
		"size", cfg.Size,
		"comparison", cfg.Comparison,
		"algorithms", len(cfg.Algorithms))

	report, runErr := runner.Run()
	if report != nil {
		var writeErr error
		if outFormat == formatJSON {
			writeErr = report.WriteJSON(ctx.App.Writer)
		} else {
			writeErr = report.WriteText(ctx.App.Writer)
		}
		if writeErr != nil {
			return errors.Wrap(writeErr, "write report")
		}
	}
	return runErr
}

// redirectLogOutput moves console logging from stdout to w (stderr when nil),
// leaving stdout to the report alone.
func redirectLogOutput(w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	_ = logger.RemoveLogObserver(os.Stdout)
	_ = logger.RemoveLogObserver(w)

	return logger.AddLogObserver(w, &logger.ConsoleFormatter{})
}
