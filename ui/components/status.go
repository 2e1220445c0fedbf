package components

import (
	"github.com/analisai/analisai/ui/styles"
)

// RenderStatus draws the status bar; spinner is shown while busy.
func RenderStatus(status string, busy bool, spinner string, width int) string {
	statusContent := status
	if busy {
		statusContent = spinner + " " + statusContent
	}

	return styles.StatusStyle(width).Render(statusContent)
}
