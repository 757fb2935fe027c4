// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// App is the bookstore CLI version
	App = "1.0.0"

	// Locales is the version of the embedded message catalogs
	Locales = "1.0.0"
)

// Set via -ldflags at build time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the build information of the running binary
func Current() Info {
	return Info{
		Version:   App,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
