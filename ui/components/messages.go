package components

import (
	"strings"

	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/ui/styles"
)

// RenderMessages draws the transcript. Assistant replies are cleaned with
// core.FormatAIResponse at render time.
func RenderMessages(messages []models.ChatMessage, pending bool, loadingDots int) string {
	var b strings.Builder

	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleUser:
			b.WriteString(userStyle.Render("Você: "+msg.Content) + "\n\n")
		case models.RoleAssistant:
			b.WriteString(assistantStyle.Render("AnalisAI: "+core.FormatAIResponse(msg.Content)) + "\n\n")
		}
	}
	if pending {
		b.WriteString(styles.MutedStyle().Render("  Analisando"+strings.Repeat(".", loadingDots)) + "\n\n")
	}

	return b.String()
}

// RenderPresets lists the analysis templates bound to F1-F4.
func RenderPresets() string {
	var b strings.Builder
	for i, p := range core.Presets {
		b.WriteString(styles.SelectedStyle().Render("F"+string(rune('1'+i))+" "+p.Title) + " ")
		b.WriteString(styles.MutedStyle().Render(p.Description) + "\n")
	}
	return b.String()
}
