// Package misc keeps build identity helpers in one place.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "cssb"

// GetAppName returns the program name used for logging and help output.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() (info struct{ version, hash string }) {
	info.version = "unknown"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.hash = s.Value
			if len(info.hash) > 12 {
				info.hash = info.hash[:12]
			}
		}
	}
	return
})

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	return buildInfo().version
}

// GetGitHash returns the (shortened) VCS revision recorded in build info.
func GetGitHash() string {
	return buildInfo().hash
}
