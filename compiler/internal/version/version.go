package version

import "fmt"

// Set at link time: -ldflags "-X github.com/desilang/cminus/compiler/internal/version.Version=..."
var (
	Version = "0.3.0-dev"
	Commit  = ""
)

func String() string {
	if Commit == "" {
		return fmt.Sprintf("cmc %s", Version)
	}
	return fmt.Sprintf("cmc %s (%s)", Version, Commit)
}
