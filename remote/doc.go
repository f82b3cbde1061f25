// Package remote provides the HTTP Fetcher used by okie to download scaffolding
// files. Any non-2xx status is an error; there is no retry and no fallback URL.
package remote
