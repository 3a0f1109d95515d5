// Package notes contains the pure logic for candidate note content.
package notes

import "regexp"

// Mention tokens are "@" followed by a name of one or two words, so that
// "ping @Sarah Chen about this" extracts "Sarah Chen".
var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_]+(?: [A-Za-z0-9_]+)?)`)

// Mentions extracts the names mentioned in note content, in order of
// appearance, without the leading "@". Duplicates are kept once.
func Mentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
