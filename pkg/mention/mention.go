// Package mention extracts @username references from comment bodies.
package mention

import (
	"regexp"
)

var pattern = regexp.MustCompile(`(^|[^\w@])@([A-Za-z0-9_]{3,64})`)

// Extract returns the distinct usernames mentioned in the text, in order of
// first appearance. "user@host" style email text does not count as a mention.
func Extract(text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var names []string
	for _, m := range matches {
		name := m[2]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
