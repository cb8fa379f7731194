package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTree() Tree {
	return Tree{
		"messenger": map[string]any{"username": "user@example.com", "password": "hunter2"},
		"discord":   map[string]any{"token": "discord-token"},
	}
}

func TestValidateShape_Valid(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
	}{
		{name: "credentials only", tree: validTree()},
		{name: "empty object", tree: Tree{}},
		{name: "unknown keys allowed", tree: Tree{"somethingNew": 42.0}},
		{name: "nulls allowed", tree: Tree{"messenger": nil, "checkUpdates": nil, "logLevel": nil}},
		{name: "empty log level", tree: Tree{"logLevel": ""}},
		{name: "known log level", tree: Tree{"logLevel": "debug"}},
		{name: "channels map", tree: Tree{"channels": map[string]any{"general": "1234567890"}}},
		{
			name: "full options",
			tree: Tree{
				"messenger": map[string]any{
					"format":       "{username}: {message}",
					"sourceFormat": map[string]any{"discord": "[D]"},
					"handlePolls":  false,
				},
				"discord":          map[string]any{"ignoredUsers": []any{"1", "2"}, "ignoreBots": true},
				"ignoredSequences": []any{"!", "//"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, validateShape(tt.tree))
		})
	}
}

func TestValidateShape_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		tree       Tree
		wantOption string
	}{
		{name: "bool as string", tree: Tree{"checkUpdates": "yes"}, wantOption: "checkUpdates"},
		{name: "nested bool", tree: Tree{"discord": map[string]any{"ignoreBots": 1.0}}, wantOption: "discord.ignoreBots"},
		{name: "section not object", tree: Tree{"discord": "token"}, wantOption: "discord"},
		{name: "list of numbers", tree: Tree{"ignoredSequences": []any{1.0}}, wantOption: "ignoredSequences"},
		{name: "unknown log level", tree: Tree{"logLevel": "loud"}, wantOption: "logLevel"},
		{name: "token not string", tree: Tree{"discord": map[string]any{"token": 12.0}}, wantOption: "discord.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateShape(tt.tree)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedConfig)
			assert.Contains(t, err.Error(), tt.wantOption)
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Tree)
		missing []string
	}{
		{name: "all present", mutate: func(Tree) {}},
		{
			name:    "empty token",
			mutate:  func(tr Tree) { tr["discord"].(map[string]any)["token"] = "" },
			missing: []string{"discord.token"},
		},
		{
			name:    "missing discord section",
			mutate:  func(tr Tree) { delete(tr, "discord") },
			missing: []string{"discord.token"},
		},
		{
			name:    "null messenger",
			mutate:  func(tr Tree) { tr["messenger"] = nil },
			missing: []string{"messenger.username", "messenger.password"},
		},
		{
			name:    "password not a string",
			mutate:  func(tr Tree) { tr["messenger"].(map[string]any)["password"] = 1234.0 },
			missing: []string{"messenger.password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := validTree()
			tt.mutate(tree)

			assert.Equal(t, tt.missing, validateCredentials(tree))
		})
	}
}
