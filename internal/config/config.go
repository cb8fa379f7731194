// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"
	"fmt"
)

// Config is the effective configuration of the bridge: the user's config.json
// merged over the built-in defaults, plus the two runtime fields Path and
// LogLevel. It is built once by [Loader.Load] and never modified afterwards;
// consumers receive it explicitly or through [FromContext].
type Config struct {
	// Messenger holds the Facebook Messenger side settings and credentials.
	Messenger Messenger `json:"messenger"`

	// Discord holds the Discord side settings and the bot token.
	Discord Discord `json:"discord"`

	// Channels maps Discord channels to Messenger threads. The value shape is
	// owned by the bridge, so it is kept as decoded JSON.
	Channels map[string]any `json:"channels"`

	// CheckUpdates enables the release check on startup.
	CheckUpdates bool `json:"checkUpdates"`

	// LogLevel is the effective verbosity: MISCORD_LOG_LEVEL (or the
	// --log-level flag) when set, otherwise the merged file value.
	LogLevel string `json:"logLevel"`

	// IgnoredSequences lists message prefixes that are never bridged.
	IgnoredSequences []string `json:"ignoredSequences"`

	// Path is the absolute config directory the file was read from.
	Path string `json:"path"`

	tree Tree
}

// Messenger holds settings of the Messenger side.
type Messenger struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// Format is the template of a bridged message, e.g. "*{username}*: {message}".
	Format       string       `json:"format"`
	SourceFormat SourceFormat `json:"sourceFormat"`

	IgnoreEmbeds            bool `json:"ignoreEmbeds"`
	AttachmentTooLargeError bool `json:"attachmentTooLargeError"`
	HandleEvents            bool `json:"handleEvents"`
	HandlePlans             bool `json:"handlePlans"`
	HandlePolls             bool `json:"handlePolls"`
	ShowPlanDetails         bool `json:"showPlanDetails"`
	ShowPollDetails         bool `json:"showPollDetails"`
}

// SourceFormat holds the labels that mark where a message came from.
type SourceFormat struct {
	Discord   string `json:"discord"`
	Messenger string `json:"messenger"`
}

// Discord holds settings of the Discord side.
type Discord struct {
	Token string `json:"token"`

	RenameChannels bool     `json:"renameChannels"`
	ShowFullNames  bool     `json:"showFullNames"`
	CreateChannels bool     `json:"createChannels"`
	MassMentions   bool     `json:"massMentions"`
	UserMentions   bool     `json:"userMentions"`
	IgnoreBots     bool     `json:"ignoreBots"`
	IgnoredUsers   []string `json:"ignoredUsers"`
}

// newConfig decodes the merged tree into the typed view. The tree is kept so
// that options unknown to this package are still available through Tree.
func newConfig(tree Tree) (*Config, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("error encoding merged config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding merged config: %w", err)
	}
	cfg.tree = tree.Clone()

	return cfg, nil
}

// Tree returns a copy of the merged settings, including keys the typed view
// does not know about.
func (c *Config) Tree() Tree {
	return c.tree.Clone()
}

// Redacted returns a copy of the merged settings with the credentials
// replaced by a mask. Empty credentials stay empty.
func (c *Config) Redacted() Tree {
	tree := c.tree.Clone()
	for _, path := range credentialPaths {
		section, ok := asMap(tree[path[0]])
		if !ok {
			continue
		}
		if s, ok := section[path[1]].(string); ok && s != "" {
			section[path[1]] = redactedMask
		}
	}

	return tree
}

const redactedMask = "********"

// credentialPaths lists the secrets that must be present in config.json.
var credentialPaths = [][2]string{
	{"discord", "token"},
	{"messenger", "username"},
	{"messenger", "password"},
}

type configCtxKey struct{}

// WithContext returns a copy of ctx carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configCtxKey{}, cfg)
}

// FromContext returns the *Config stored in ctx by [WithContext], or nil if
// there is none.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configCtxKey{}).(*Config)
	return cfg
}
