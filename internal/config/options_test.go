package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newOptionsBuilder ─────────────────────────────────────────────────────────

// TestNewOptionsBuilder_InitialState verifies that a freshly created builder
// has no error and an empty options slice.
func TestNewOptionsBuilder_InitialState(t *testing.T) {
	b := newOptionsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.options)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns
// zero-value Options.
func TestBuild_EmptyBuilder(t *testing.T) {
	opts, err := newOptionsBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil options.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newOptionsBuilder()
	b.err = assert.AnError

	opts, err := b.build()
	assert.Nil(t, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerOverrides verifies that non-empty fields of later
// layers win and empty ones keep earlier values.
func TestBuild_LaterLayerOverrides(t *testing.T) {
	b := newOptionsBuilder()
	b.options = append(b.options,
		&Options{DataPath: "/env", LogLevel: "warn"},
		&Options{LogLevel: "debug"},
	)

	opts, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/env", opts.DataPath)
	assert.Equal(t, "debug", opts.LogLevel)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newOptionsBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"MISCORD_DATA_PATH": "/from/env",
		"MISCORD_LOG_LEVEL": "error",
	})

	b := newOptionsBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.options, 1)
	assert.Equal(t, "/from/env", b.options[0].DataPath)
	assert.Equal(t, "error", b.options[0].LogLevel)
}

// TestWithFlags_SkipsNil verifies that a nil flag layer is ignored.
func TestWithFlags_SkipsNil(t *testing.T) {
	b := newOptionsBuilder().withFlags(nil)
	assert.Empty(t, b.options)
}

// ── GetOptions ────────────────────────────────────────────────────────────────

func TestGetOptions_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"MISCORD_DATA_PATH": "/from/env",
		"MISCORD_LOG_LEVEL": "error",
	})

	opts, err := GetOptions(&Options{LogLevel: "trace"})

	require.NoError(t, err)
	assert.Equal(t, "/from/env", opts.DataPath)
	assert.Equal(t, "trace", opts.LogLevel)
}

func TestGetOptions_EnvOnly(t *testing.T) {
	setEnvVars(t, map[string]string{"MISCORD_LOG_LEVEL": "debug"})

	opts, err := GetOptions(nil)

	require.NoError(t, err)
	assert.Equal(t, &Options{LogLevel: "debug"}, opts)
}
