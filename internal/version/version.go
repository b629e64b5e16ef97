// internal/version/version.go
package version

// Name is the program name stamped into output @PG records and usage text.
const Name = "revtag"

// Version follows semver; bump on every release.
const Version = "0.1.0"
