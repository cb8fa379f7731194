package config

// Default values of the top-level options.
const (
	DefaultLogLevel      = "info"
	DefaultMessageFormat = "*{username}*: {message}"
	ConfigFileName       = "config.json"
)

// defaultTree holds the built-in settings. It is never handed out directly,
// see [DefaultTree].
var defaultTree = Tree{
	"messenger": map[string]any{
		"format": DefaultMessageFormat,
		"sourceFormat": map[string]any{
			"discord":   "(Discord)",
			"messenger": "(Messenger: {name})",
		},
		"ignoreEmbeds":            false,
		"attachmentTooLargeError": true,
		"handleEvents":            true,
		"handlePlans":             true,
		"handlePolls":             true,
		"showPlanDetails":         true,
		"showPollDetails":         true,
	},
	"discord": map[string]any{
		"renameChannels": false,
		"showFullNames":  false,
		"createChannels": false,
		"massMentions":   false,
		"userMentions":   true,
		"ignoreBots":     false,
		"ignoredUsers":   []any{},
	},
	"channels":         map[string]any{},
	"checkUpdates":     false,
	"logLevel":         DefaultLogLevel,
	"ignoredSequences": []any{},
}

// DefaultTree returns a copy of the built-in settings that the caller may
// modify freely.
func DefaultTree() Tree {
	return defaultTree.Clone()
}
