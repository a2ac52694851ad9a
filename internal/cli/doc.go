// Package cli parses command-line arguments into an app.Config and maps
// usage mistakes to exit codes.
package cli
