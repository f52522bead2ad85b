package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
)

// version is set via -ldflags at build time.
var version = ""

var (
	versionOnce   sync.Once
	cachedVersion string
)

// appVersion returns the best-effort version of the binary. The lookup order is:
//  1. The -ldflags value
//  2. NEXUS_VERSION from the environment
//  3. Go build information (module version or VCS revision)
//  4. A development fallback string
func appVersion() string {
	versionOnce.Do(func() {
		cachedVersion = detectVersion()
	})
	return cachedVersion
}

func detectVersion() string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("NEXUS_VERSION")); v != "" {
		return v
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return fmt.Sprintf("dev-%s", setting.Value)
			}
		}
	}

	return "development"
}
