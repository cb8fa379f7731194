package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Options are the runtime knobs resolved before config.json is read. They are
// assembled from environment variables and command-line flags; a non-empty
// flag value overrides the environment.
//
// Struct tags:
//   - env: environment variable name (caarlos0/env).
type Options struct {
	// DataPath is the config directory. Empty means the per-user default,
	// see [ResolveDataPath].
	// Env: MISCORD_DATA_PATH
	DataPath string `env:"MISCORD_DATA_PATH"`

	// LogLevel overrides the logLevel option of config.json.
	// Env: MISCORD_LOG_LEVEL
	LogLevel string `env:"MISCORD_LOG_LEVEL"`
}

type optionsBuilder struct {
	options []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		options: make([]*Options, 0, 2),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, o := range b.options {
		if err := mergo.Merge(opts, o, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(flagOpts *Options) *optionsBuilder {
	if flagOpts != nil {
		b.options = append(b.options, flagOpts)
	}
	return b
}

// GetOptions resolves [Options] from the environment and, when non-nil, the
// values bound by [BindFlags]. Flags take precedence over the environment.
func GetOptions(flagOpts *Options) (*Options, error) {
	return newOptionsBuilder().
		withEnv().
		withFlags(flagOpts).
		build()
}
