// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"MISCORD_DATA_PATH": "/srv/miscord",
		"MISCORD_LOG_LEVEL": "debug",
	})

	// Act
	opts := &Options{}
	err := parseEnv(opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/srv/miscord", opts.DataPath)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"MISCORD_LOG_LEVEL": "warn",
	})

	// Act
	opts := &Options{}
	err := parseEnv(opts)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, opts.DataPath)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestParseEnv_NoVars(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	opts := &Options{}
	err := parseEnv(opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
}

func TestParseEnv_NonPointer(t *testing.T) {
	err := parseEnv(Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// setEnvVars clears the MISCORD_* variables and sets vars for the duration
// of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MISCORD_DATA_PATH", "MISCORD_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}
