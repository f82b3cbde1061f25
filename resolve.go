package okie

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// ParseBaseURL parses raw as an absolute base URL. A missing trailing slash is
// added so that resolved files stay below the base path.
func ParseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: must not be empty", ErrInvalidBaseURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidBaseURL, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		u.RawPath = ""
	}
	return u, nil
}

// SplitIdentifier splits id on its last "@" into a file path and a tag.
// ok is false when id has no "@". A literal "@" in a file path is always
// treated as a tag separator.
func SplitIdentifier(id string) (path, tag string, ok bool) {
	i := strings.LastIndex(id, "@")
	if i < 0 {
		return id, "", false
	}
	return id[:i], id[i+1:], true
}

// Resolve turns an identifier into its Target under base.
// The URL is base, then "@<tag>/" when tagged, then the file path.
func Resolve(base *url.URL, id string) (Target, error) {
	path, tag, tagged := SplitIdentifier(id)
	if err := validatePath(path); err != nil {
		return Target{}, fmt.Errorf("%w: %q: %w", ErrInvalidIdentifier, id, err)
	}
	root := base
	if tagged {
		if err := validateTag(tag); err != nil {
			return Target{}, fmt.Errorf("%w: %q: %w", ErrInvalidIdentifier, id, err)
		}
		root = base.ResolveReference(&url.URL{Path: "@" + tag + "/"})
	}
	return Target{
		Path: path,
		Tag:  tag,
		URL:  root.ResolveReference(&url.URL{Path: path}),
	}, nil
}

func validatePath(path string) error {
	if path == "" {
		return errors.New("empty file path")
	}
	if strings.HasPrefix(path, "/") {
		return errors.New("file path must be relative")
	}
	if hasControl(path) {
		return errors.New("file path contains control characters")
	}
	return nil
}

func validateTag(tag string) error {
	if tag == "" {
		return errors.New("empty tag after @")
	}
	if hasControl(tag) {
		return errors.New("tag contains control characters")
	}
	return nil
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
