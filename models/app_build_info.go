// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds plain data types shared between miscord packages.
package models

import "fmt"

// unknownBuildValue is reported for metadata not injected at link time.
const unknownBuildValue = "N/A"

// AppBuildInfo carries immutable build-time metadata of the miscord binary.
//
// Values are injected with -ldflags "-X main.buildVersion=..." during release
// builds and printed by "miscord version".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are replaced with
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}

// BuildVersion returns the release version, e.g. "1.4.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the git commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the metadata on one line, e.g. for log fields.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.buildVersion, a.buildCommit, a.buildDate)
}
