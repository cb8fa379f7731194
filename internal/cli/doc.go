// Package cli implements the miscord command line.
//
// Commands:
//
//	miscord config path      print the resolved config.json location
//	miscord config init      scaffold an example config.json
//	miscord config show      print the effective configuration
//	miscord config validate  load the configuration and report problems
//	miscord version          print build information
//
// Global flags select the config directory (--data-path), override the log
// level (--log-level), switch logs to JSON (--log-json) and keep the process
// waiting for Enter after a config error (--wait), which is how packaged
// desktop builds keep the console window open.
package cli
