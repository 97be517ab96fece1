// Package misc keeps build time program information in a single place.
package misc

// Set at build time via -ldflags "-X stylekit/misc.version=... -X stylekit/misc.gitHash=...".
var (
	appName = "stylekit"
	version = "0.0.0-dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
