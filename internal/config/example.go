package config

import _ "embed"

//go:embed assets/config.example.json
var exampleConfig []byte

// ExampleConfig returns the config.json template written on first start.
// The credentials are left empty for the user to fill in.
func ExampleConfig() []byte {
	out := make([]byte, len(exampleConfig))
	copy(out, exampleConfig)
	return out
}
