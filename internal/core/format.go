package core

import "strings"

// FormatAIResponse strips heading and bold markers, drops blank lines and
// separates the remaining trimmed lines with an empty line.
func FormatAIResponse(text string) string {
	text = strings.ReplaceAll(text, "###", "")
	text = strings.ReplaceAll(text, "**", "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n\n")
}
