// Package version holds the application version.
package version

// Version is the current application version, overridden at build time.
var Version = "0.1.0"
