package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines no wider than width display cells, preferring
// to break at spaces. Words longer than width are split.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	line := make([]rune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\n' {
			out.WriteString(string(line))
			out.WriteRune('\n')
			line, lineWidth, lastSpaceIdx = line[:0], 0, -1
			i++
			continue
		}
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			if r == ' ' {
				out.WriteString(string(line))
				out.WriteRune('\n')
				line, lineWidth, lastSpaceIdx = line[:0], 0, -1
				i++
				continue
			}
			if lastSpaceIdx >= 0 {
				out.WriteString(string(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]rune{}, line[lastSpaceIdx+1:]...)
				lineWidth = runewidth.StringWidth(string(line))
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(string(line))
				out.WriteRune('\n')
				line, lineWidth, lastSpaceIdx = line[:0], 0, -1
			}
			continue
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(string(line))
	return out.String()
}

func lastSpaceIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}
	return -1
}
