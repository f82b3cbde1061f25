package okie

import "strings"

// Placeholder tokens. ContentPlaceholder is substituted in fetched text and
// PathPlaceholder in the local file path; the two are never interchanged.
const (
	ContentPlaceholder = "{{name}}"
	PathPlaceholder    = "$name"
)

// RenderContent replaces every ContentPlaceholder in text with ctx.Name.
// There is no escaping: a name containing the token is not supported.
func RenderContent(text string, ctx Context) string {
	return strings.ReplaceAll(text, ContentPlaceholder, ctx.Name)
}

// RenderPath replaces every PathPlaceholder in path with ctx.Name.
func RenderPath(path string, ctx Context) string {
	return strings.ReplaceAll(path, PathPlaceholder, ctx.Name)
}
