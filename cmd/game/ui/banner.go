package ui

import (
	"fmt"
	"strings"
)

const bannerWidth = 58

// Banner renders the two-line framed title shown above the game view.
func Banner(title1, title2 string) string {
	if title1 == "" {
		title1 = "DUNGEON"
	}
	if title2 == "" {
		title2 = "EXPLORER"
	}

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", bannerWidth) + "╗\n")
	b.WriteString(bannerLine(title1))
	b.WriteString(bannerLine(title2))
	b.WriteString("╚" + strings.Repeat("═", bannerWidth) + "╝")
	return b.String()
}

func bannerLine(title string) string {
	runes := []rune(strings.ToUpper(strings.TrimSpace(title)))
	if len(runes) > bannerWidth-2 {
		runes = runes[:bannerWidth-2]
	}
	spaced := string(runes)
	if len(runes)*2-1 <= bannerWidth-2 {
		parts := make([]string, len(runes))
		for i, r := range runes {
			parts[i] = string(r)
		}
		spaced = strings.Join(parts, " ")
	}
	pad := bannerWidth - len([]rune(spaced))
	left := pad / 2
	right := pad - left
	return fmt.Sprintf("║%s%s%s║\n", strings.Repeat(" ", left), spaced, strings.Repeat(" ", right))
}
