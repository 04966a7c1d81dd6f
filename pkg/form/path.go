package form

import "strings"

// Path addresses one position in the tree as the ordered key/index segments
// from the root field down, excluding the root key itself. List indices are
// their decimal text.
type Path []string

// ParsePath splits a dotted path string into segments.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

// String joins the segments with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns a new path extended by one segment.
func (p Path) Child(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}
