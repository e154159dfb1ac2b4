// Package platform classifies the host operating system into the coarse
// platform names used by task conditions: "linux", "mac" and "windows".
package platform

import "runtime"

// Name returns the platform identifier for the current host.
//
// The classification is deliberately coarse: darwin reports "mac", windows
// reports "windows", and every other operating system (including the BSDs)
// reports "linux". Task conditions match against these three names only.
func Name() string {
	return nameFor(runtime.GOOS)
}

// nameFor maps a GOOS value to a platform identifier.
func nameFor(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "darwin":
		return "mac"
	default:
		return "linux"
	}
}
