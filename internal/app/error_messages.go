// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// miscord command-line interface.
//
// All Msg* constants are human-readable message strings printed to the
// terminal or written into log entries. Keeping them in one place ensures
// consistent wording between the CLI output and the logs.
package app

const (
	// MsgSetupIncomplete heads the notice shown after an example config
	// file has been written on first start.
	MsgSetupIncomplete = "Setup incomplete"

	// MsgDefaultConfigCopied precedes the path of the freshly written
	// example config file.
	MsgDefaultConfigCopied = "Default config copied to"

	// MsgCredentialsNotFound heads the notice shown when the Discord token
	// or the Messenger username/password is empty.
	MsgCredentialsNotFound = "Token/username/password not found."

	// MsgCheckConfigHere precedes the path of the config file the user has
	// to edit.
	MsgCheckConfigHere = "Check the config here:"

	// MsgUseConfigGenerator precedes the config generator link.
	MsgUseConfigGenerator = "Fill it with data or use config generator here:"

	// MsgPressEnterToExit is shown in wait mode before blocking on stdin.
	MsgPressEnterToExit = "Press Enter to exit."

	// MsgConfigValid is printed by "config validate" on success.
	MsgConfigValid = "config OK"

	// MsgConfigExists is printed by "config init" when a file is present.
	MsgConfigExists = "Config file already exists at"

	// MsgConfigCreated is printed by "config init" after writing the example.
	MsgConfigCreated = "Config file created at"
)
