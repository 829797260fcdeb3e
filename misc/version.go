// Package misc provides small helpers shared across commands.
package misc

import "runtime/debug"

const appName = "twee"

// GetAppName returns program name for logs and generated file names.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in build info, if any.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision recorded in build info, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
