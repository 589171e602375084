// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads stattools settings from environment variables
// with defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Environment values select the logger configuration.
const (
	EnvironmentDevelopment = "dev"
	EnvironmentProduction  = "prod"

	defaultJKNum  = 50
	defaultNRands = 100
)

// Config holds the stattools settings.
type Config struct {
	// Seed seeds the random source for resampling. It is only
	// meaningful if SeedSet; otherwise callers pick a fresh seed.
	Seed    uint64
	SeedSet bool

	JKNum    int           // Jack-Knife subsamples
	NRands   int           // Bootstrap resamples
	LogLevel zapcore.Level // minimum level logged

	Environment string // "dev" or "prod"
}

// Load reads the configuration from the environment. Unset variables
// keep their defaults. It returns an error if any value is malformed
// or out of range.
func Load() (Config, error) {
	cfg := Config{
		JKNum:       defaultJKNum,
		NRands:      defaultNRands,
		LogLevel:    zapcore.InfoLevel,
		Environment: EnvironmentDevelopment,
	}

	if v := getenv("STATTOOLS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: STATTOOLS_SEED must be an unsigned integer: %w", err)
		}
		cfg.Seed, cfg.SeedSet = seed, true
	}
	if v := getenv("STATTOOLS_JK_NUM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config: STATTOOLS_JK_NUM must be an integer: %w", err)
		}
		cfg.JKNum = n
	}
	if v := getenv("STATTOOLS_NRANDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config: STATTOOLS_NRANDS must be an integer: %w", err)
		}
		cfg.NRands = n
	}
	if v := getenv("STATTOOLS_LOG_LEVEL"); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("config: STATTOOLS_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv("STATTOOLS_ENV"); v != "" {
		cfg.Environment = strings.ToLower(v)
	}

	if err := validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// getenv returns the trimmed value of key with any inline "#" comment
// removed, as left behind by some .env files.
func getenv(key string) string {
	v := os.Getenv(key)
	if i := strings.Index(v, "#"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

func validate(cfg *Config) error {
	if cfg.JKNum < 2 {
		return errors.New("config: STATTOOLS_JK_NUM must be at least 2")
	}
	if cfg.NRands < 1 {
		return errors.New("config: STATTOOLS_NRANDS must be positive")
	}
	switch cfg.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("config: STATTOOLS_ENV must be %q or %q, got %q",
			EnvironmentDevelopment, EnvironmentProduction, cfg.Environment)
	}
	return nil
}
