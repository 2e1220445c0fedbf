package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("62")
	muted   = lipgloss.Color("241")
	success = lipgloss.Color("42")
	failure = lipgloss.Color("196")
	warning = lipgloss.Color("214")
)

// ChartColors cycles through the bars of a chart.
var ChartColors = []lipgloss.Color{"39", "42", "214", "141", "203", "51"}

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func ActiveTabStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(accent).
		Padding(0, 2)
}

func TabStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 2)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("141")).
		MarginBottom(1)
}

func SectionStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1).
		Width(max(width-2, 20))
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

func UserStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1).
		MarginLeft(2)
}

func AssistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(warning).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(warning).
		Padding(0, 1).
		MarginLeft(2)
}

func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
}

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(success) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(failure) }
func PendingStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(warning) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(muted) }
