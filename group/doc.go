// Package group provides named presets of file identifiers.
// Builtin returns the presets embedded in the binary; ParseFile loads user
// presets that can be merged over them. On the command line a preset is
// requested as "+name".
package group
