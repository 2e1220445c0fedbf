package components

import (
	"github.com/analisai/analisai/ui/styles"
)

// RenderInput frames an already rendered text input.
func RenderInput(input string, width int) string {
	return styles.InputStyle(width).Render(input)
}
