package config

import (
	"fmt"
)

// Build identity of the portal binary, stamped by the release pipeline via
//
//	-ldflags "-X github.com/lodgera/lodgera-portal/internal/config.Version=..."
//
// A plain `go build` reports a dev build. The values surface on the
// /api/version endpoint and the -version flag.
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the portal release version.
func GetVersion() string {
	return Version
}

// GetBuild returns the build timestamp.
func GetBuild() string {
	return Build
}

// GetGitCommit returns the git commit the binary was built from.
func GetGitCommit() string {
	return GitCommit
}

// GetFullVersion returns the one-line form printed by the -version flag.
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}
