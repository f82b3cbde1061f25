// Package okie fetches project scaffolding files from a remote static tree.
// Each file identifier is resolved to a URL (with an optional @tag override),
// downloaded, templated with the project name and written under a local root.
// Identifiers are processed concurrently and fail independently.
package okie
