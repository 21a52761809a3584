package ui

import "strings"

// FormatList joins items into a natural-language list:
// "nothing", "a", "a and b", "a, b, and c".
func FormatList(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
