// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stattools runs the stat-tools estimators on data from files or
// stdin.
//
// Usage:
//
//	stattools <command> [flags]
//
// The commands are:
//
//	describe  summarize newline-separated numbers read from stdin
//	chi2      chi-square distance between two measured vectors
//	corr      Pearson correlation with bootstrap errors
//	crosstab  frequency table of one label against others
//	timetab   frequency table of a label over time bins
//	glm       fit a Poisson or binomial model of y on x
//
// Settings are read from the environment, or from a .env file in the
// current directory: STATTOOLS_SEED, STATTOOLS_JK_NUM,
// STATTOOLS_NRANDS, STATTOOLS_LOG_LEVEL and STATTOOLS_ENV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arnaupujol/stat-tools/internal/config"
)

// env is what every command runs with.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	rng    *rand.Rand
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	help string
	run  func(e *env, args []string) error
}

var commands = map[string]command{
	"describe": {"summarize numbers read from stdin", runDescribe},
	"chi2":     {"chi-square distance between two measured vectors", runChi2},
	"corr":     {"Pearson correlation with bootstrap errors", runCorr},
	"crosstab": {"frequency table of one label against others", runCrosstab},
	"timetab":  {"frequency table of a label over time bins", runTimetab},
	"glm":      {"fit a Poisson or binomial model of y on x", runGLM},
}

func main() {
	if err := godotenv.Overload(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		usage(stderr)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "stattools: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "stattools: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, stderr)
	defer logger.Sync()

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	e := &env{
		cfg:    cfg,
		log:    logger,
		rng:    newRand(seed),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	logger.Debug("starting", zap.String("command", args[0]), zap.Uint64("seed", seed))

	if err := cmd.run(e, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: stattools <command> [flags]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].help)
	}
}

// newLogger returns a logger writing to w, as JSON in production and
// as console text in development.
func newLogger(cfg config.Config, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	enc := zapcore.NewConsoleEncoder(encCfg)
	if cfg.Environment == config.EnvironmentProduction {
		encCfg = zap.NewProductionEncoderConfig()
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core).Named("stattools")
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newFlagSet returns a flag set for the named command that reports
// parse errors on e.stderr.
func (e *env) newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet("stattools "+name, flag.ContinueOnError)
	flags.SetOutput(e.stderr)
	return flags
}

// open returns the named input file, or stdin for "-".
func (e *env) open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(e.stdin), nil
	}
	return os.Open(name)
}
