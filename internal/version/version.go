// internal/version/version.go
package version

// Version is the release string stamped into --version output.
var Version = "0.1.0"
