// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed assets/config.schema.json
var configSchema []byte

const configSchemaURL = "https://miscord.net/schemas/config.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(configSchemaURL, bytes.NewReader(configSchema)); err != nil {
		return nil, fmt.Errorf("add config schema: %w", err)
	}

	return compiler.Compile(configSchemaURL)
})

// validateShape checks the option types of a parsed config.json against the
// embedded JSON schema. Unknown keys are allowed.
//
// Returns an error wrapping [ErrMalformedConfig] that names the first
// offending option.
func validateShape(tree Tree) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	if err := schema.Validate(map[string]any(tree)); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedConfig, describeSchemaError(err))
	}

	return nil
}

// describeSchemaError returns "<option>: <message>" for the first leaf cause
// of a schema validation error.
func describeSchemaError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	option := strings.ReplaceAll(strings.TrimPrefix(ve.InstanceLocation, "/"), "/", ".")
	if option == "" {
		return ve.Message
	}
	return option + ": " + ve.Message
}

// validateCredentials checks that the Discord token and the Messenger
// username and password are non-empty strings.
//
// Returns the dotted names of the missing fields, or nil if all are present.
func validateCredentials(tree Tree) []string {
	var missing []string
	for _, path := range credentialPaths {
		v, _ := tree.Lookup(path[0], path[1])
		if s, ok := v.(string); !ok || s == "" {
			missing = append(missing, path[0]+"."+path[1])
		}
	}

	return missing
}
