package config

import (
	"errors"
	"fmt"
)

// GuideURL points users at the hosted config generator.
const GuideURL = "https://miscord.net/config-generator.html"

// Errors returned by [Loader.Load] when the config file cannot be turned into
// a usable [Config].
var (
	// ErrSetupIncomplete indicates that no config file existed and an example
	// file was written in its place. The user has to fill it in.
	ErrSetupIncomplete = errors.New("setup incomplete: example config created")
	// ErrMissingCredentials indicates that the Discord token or the Messenger
	// username/password are absent or empty.
	ErrMissingCredentials = errors.New("token/username/password not found")
	// ErrMalformedConfig indicates that the config file is not valid JSON or
	// its top level is not an object.
	ErrMalformedConfig = errors.New("malformed config file")
)

// SetupError is a user-remediable failure: the config file at Path has to be
// edited (or generated with the tool at GuideURL) before the bridge can start.
type SetupError struct {
	// Path is the config file the user has to edit.
	Path string
	// GuideURL is the config generator link shown with the error.
	GuideURL string
	// Detail optionally carries the validation message.
	Detail string
	// Err is one of [ErrSetupIncomplete] or [ErrMissingCredentials].
	Err error
}

func newSetupError(path string, err error, detail string) *SetupError {
	return &SetupError{
		Path:     path,
		GuideURL: GuideURL,
		Detail:   detail,
		Err:      err,
	}
}

func (e *SetupError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v (%s): check the config here: %s", e.Err, e.Detail, e.Path)
	}
	return fmt.Sprintf("%v: check the config here: %s", e.Err, e.Path)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
