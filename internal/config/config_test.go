// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var keys = []string{
	"STATTOOLS_SEED",
	"STATTOOLS_JK_NUM",
	"STATTOOLS_NRANDS",
	"STATTOOLS_LOG_LEVEL",
	"STATTOOLS_ENV",
}

func clearEnv(t *testing.T) {
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.SeedSet)
	require.Equal(t, defaultJKNum, cfg.JKNum)
	require.Equal(t, defaultNRands, cfg.NRands)
	require.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	require.Equal(t, EnvironmentDevelopment, cfg.Environment)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATTOOLS_SEED", "42")
	t.Setenv("STATTOOLS_JK_NUM", " 10  # fewer groups")
	t.Setenv("STATTOOLS_NRANDS", "500")
	t.Setenv("STATTOOLS_LOG_LEVEL", "debug")
	t.Setenv("STATTOOLS_ENV", "PROD")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.SeedSet)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, 10, cfg.JKNum)
	require.Equal(t, 500, cfg.NRands)
	require.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	require.Equal(t, EnvironmentProduction, cfg.Environment)
}

func TestLoadInvalid(t *testing.T) {
	for key, val := range map[string]string{
		"STATTOOLS_SEED":      "-1",
		"STATTOOLS_JK_NUM":    "1",
		"STATTOOLS_NRANDS":    "zero",
		"STATTOOLS_LOG_LEVEL": "loud",
		"STATTOOLS_ENV":       "staging",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
