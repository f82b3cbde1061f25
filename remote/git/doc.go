// Package git provides an okie.Fetcher backed by a Git clone instead of HTTP.
// The repository is cloned on first use; file URLs are mapped to paths in the
// working tree relative to the configured base URL.
package git
