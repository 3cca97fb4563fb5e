package version

import "fmt"

// Version is the semver of the current build, overridable at link time.
var Version = "0.1.0"

// DevVersion is the developer version suffix.
var DevVersion = ""

func GetCurrentVersion() string {
	if DevVersion != "" {
		return fmt.Sprintf("%s-%s", Version, DevVersion)
	}
	return Version
}
