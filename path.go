package treewalk

import "strings"

// PathSeparator separates keys of a rendered path
const PathSeparator = "."

// Path represents keys leading from the traversal root to a property
type Path []string

// String returns dot joined path
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Key returns the last key
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Depth returns number of keys, top level properties have depth 1
func (p Path) Depth() int {
	return len(p)
}

// Clone returns a copy that does not share the traversal buffer
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(make(Path, 0, len(p)), p...)
}

// ParsePath splits dot joined path
func ParsePath(path string) Path {
	if path == "" {
		return Path{}
	}
	return strings.Split(path, PathSeparator)
}
