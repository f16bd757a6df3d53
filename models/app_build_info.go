// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo carries the build metadata injected by linker flags. It is
// shown by the TUI about screen and printed by the export mode.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the given values; empty ones read back as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNA(a.version) }

func (a AppBuildInfo) Date() string { return orNA(a.date) }

func (a AppBuildInfo) Commit() string { return orNA(a.commit) }

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
