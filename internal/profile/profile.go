// Package profile tracks the active build profile for the current run.
//
// The profile is a free-form name selected by the user (for example
// "development", "ci" or "production") that task conditions can match
// against. It is sourced from the TASKFORGE_PROFILE environment variable and
// defaults to [DefaultProfile] when unset.
package profile

import (
	"os"
	"strings"
)

// EnvVarName is the environment variable holding the active profile.
const EnvVarName = "TASKFORGE_PROFILE"

// DefaultProfile is the profile name used when none is configured.
const DefaultProfile = "development"

// Normalize canonicalizes a profile name: trimmed and lowercased.
// Empty input normalizes to [DefaultProfile].
func Normalize(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return DefaultProfile
	}
	return normalized
}

// Get returns the active profile name, normalized.
func Get() string {
	return Normalize(os.Getenv(EnvVarName))
}

// Set stores the active profile for the current process, normalized.
// The CLI calls this when --profile is passed so that every subsequent
// condition evaluation and spawned script observes the same profile.
func Set(name string) string {
	normalized := Normalize(name)
	os.Setenv(EnvVarName, normalized)
	return normalized
}
