// Package options turns command-line arguments into the ordered list of file
// identifiers to fetch.
package options

import (
	"strings"

	"github.com/skosovsky/okie/group"
)

// GroupPrefix marks an argument as a group reference ("+rust").
const GroupPrefix = "+"

// Collect expands group references using groups and removes duplicates,
// keeping the first occurrence of each identifier. Unknown groups return
// group.ErrUnknownGroup.
func Collect(args []string, groups *group.Set) ([]string, error) {
	seen := make(map[string]struct{}, len(args))
	files := make([]string, 0, len(args))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		files = append(files, id)
	}
	for _, arg := range args {
		name, isGroup := strings.CutPrefix(arg, GroupPrefix)
		if !isGroup {
			add(arg)
			continue
		}
		ids, err := groups.Lookup(name)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			add(id)
		}
	}
	return files, nil
}
