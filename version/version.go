// Package version exposes the httpcall release version, used for the
// default User-Agent header and for diagnostics.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/httpcall/version.Version=1.2.0"
//
// When unset, the module version recorded in build info is used.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is the release version. Set via -ldflags; "dev" otherwise.
var Version = "dev"

const modulePath = "github.com/kbukum/httpcall"

// String returns the effective version: the ldflags value when set,
// else the module version from build info, else "dev".
func String() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath && dep.Version != "(devel)" {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return Version
}

// UserAgent returns the product token sent as the default User-Agent
// header, e.g. "httpcall/1.2.0".
func UserAgent() string {
	return "httpcall/" + String()
}
