package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the option flags on fs and returns the [Options] they
// write into. The returned value is filled once fs is parsed.
//
// Flags:
//
//	-d/--data-path  config directory
//	--log-level     log verbosity (trace, debug, info, warn, error, fatal)
func BindFlags(fs *pflag.FlagSet) *Options {
	opts := &Options{}

	fs.StringVarP(&opts.DataPath, "data-path", "d", "", "Config directory (default: per-user config dir)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level override (trace, debug, info, warn, error, fatal)")

	return opts
}
