package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-miscord/internal/logger"
	"github.com/MKhiriev/go-miscord/internal/store"
)

// configFilePerm keeps the credentials readable by the owner only.
const configFilePerm os.FileMode = 0o600

// Loader turns the config directory into a [Config]. It reads config.json
// through a [store.FileStore] and scaffolds the example file when there is
// none yet.
type Loader struct {
	files store.FileStore
	log   *logger.Logger
}

// NewLoader constructs a [Loader]. A nil log discards output.
func NewLoader(files store.FileStore, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		files: files,
		log:   log.WithScope("getConfig"),
	}
}

// Load resolves the config directory from opts, reads and validates
// config.json, and merges it over [DefaultTree].
//
// Errors:
//   - *SetupError wrapping [ErrSetupIncomplete] when the file did not exist;
//     the example file has been written at SetupError.Path;
//   - *SetupError wrapping [ErrMissingCredentials] when the token, username
//     or password is empty;
//   - an error wrapping [ErrMalformedConfig] when the file is not a JSON
//     object or an option has the wrong type;
//   - any other I/O error, wrapped.
func (l *Loader) Load(opts Options) (*Config, error) {
	dir, err := ResolveDataPath(opts.DataPath)
	if err != nil {
		return nil, err
	}
	file := ConfigFile(dir)
	l.log.Info().Str("path", file).Msg("using config")

	data, err := l.files.ReadFile(file)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}

		l.log.Warn().Str("path", file).Msg("config not found, creating example config")
		if err := l.scaffold(dir, file); err != nil {
			return nil, err
		}
		return nil, newSetupError(file, ErrSetupIncomplete, "")
	}

	userTree, err := parseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if err := validateShape(userTree); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if missing := validateCredentials(userTree); len(missing) > 0 {
		return nil, newSetupError(file, ErrMissingCredentials, strings.Join(missing, ", ")+" empty")
	}

	merged := Merge(DefaultTree(), userTree)
	merged["path"] = dir
	merged["logLevel"] = effectiveLogLevel(opts.LogLevel, merged["logLevel"])

	cfg, err := newConfig(merged)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", file, ErrMalformedConfig, err)
	}

	l.log.Debug().Str("log_level", cfg.LogLevel).Int("channels", len(cfg.Channels)).Msg("config loaded")
	return cfg, nil
}

// Init writes the example config.json into the directory resolved from opts
// unless a config file is already there. It returns the file path and
// whether the file was created.
func (l *Loader) Init(opts Options) (string, bool, error) {
	dir, err := ResolveDataPath(opts.DataPath)
	if err != nil {
		return "", false, err
	}
	file := ConfigFile(dir)

	_, err = l.files.ReadFile(file)
	if err == nil {
		return file, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("error reading config: %w", err)
	}

	if err := l.scaffold(dir, file); err != nil {
		return "", false, err
	}
	l.log.Info().Str("path", file).Msg("example config created")

	return file, true, nil
}

func (l *Loader) scaffold(dir, file string) error {
	if err := l.files.EnsureDir(dir); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}
	if err := l.files.WriteFile(file, ExampleConfig(), configFilePerm); err != nil {
		return fmt.Errorf("error writing example config: %w", err)
	}

	return nil
}

// effectiveLogLevel prefers the runtime override, then the merged file
// value, then [DefaultLogLevel].
func effectiveLogLevel(override string, merged any) string {
	if override != "" {
		return override
	}
	if s, ok := merged.(string); ok && s != "" {
		return s
	}

	return DefaultLogLevel
}
