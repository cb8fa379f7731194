// Package config loads the miscord configuration.
//
// The configuration lives in config.json inside the config directory
// (MISCORD_DATA_PATH, the --data-path flag, or the per-user config dir).
// Loading follows these steps:
//  1. Resolve the directory and read config.json. When the file is missing,
//     an example file is written and a [SetupError] is returned.
//  2. Parse the file and validate it: option types against an embedded JSON
//     schema, then the required credentials.
//  3. Deep-merge the user settings over [DefaultTree] with [Merge].
//  4. Attach the runtime fields (directory path and effective log level) and
//     decode the result into an immutable [Config].
//
// The main entry point is [Loader.Load]; runtime knobs come from
// [GetOptions].
package config
