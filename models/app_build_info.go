// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata of vaultd and vaultctl, injected with
// -ldflags "-X main.buildVersion=...". Missing values read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// Print writes the three "Build ...:" lines shown at startup.
func (a AppBuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", a.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", a.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", a.BuildCommit())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
