// Package buildinfo carries the identity of the binary. Version, Commit and
// Date are overridden at link time with -ldflags "-X ...".
package buildinfo

import "fmt"

// Name is the library family this tool implements.
const Name = "libnoise"

var (
	Version = "1.0-SNAPSHOT"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("noisegrid (%s) %s (commit=%s, date=%s)", Name, Version, Commit, Date)
}
