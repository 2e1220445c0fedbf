package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/ui/styles"
)

func RenderTabs(active models.View) string {
	var tabs []string
	for i, v := range models.Views() {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == active {
			tabs = append(tabs, styles.ActiveTabStyle().Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle().Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n"
}
