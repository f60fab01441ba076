// internal/version/version.go
package version

// Version is the pipeline release string printed by --version.
const Version = "0.4.1"
