package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// parseTree decodes config.json contents into a [Tree]. The top level must
// be a JSON object.
func parseTree(data []byte) (Tree, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: error decoding json config: %w", ErrMalformedConfig, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level object", ErrMalformedConfig)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformedConfig)
	}

	return Tree(obj), nil
}
