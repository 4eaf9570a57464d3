package arena

import (
	"net/url"
	"strings"
)

// ExtractBlockID returns the last path segment of a block URL,
// e.g. "https://www.are.na/block/12345/?utm_source=x" -> "12345".
// Query strings and fragments are ignored. It reports false only when nothing is left.
func ExtractBlockID(rawURL string) (string, bool) {
	p := strings.TrimSpace(rawURL)
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "", false
	}
	id := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if id == "" {
		return "", false
	}
	return id, true
}
