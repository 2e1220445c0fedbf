package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/ui/styles"
)

const labelWidth = 18

// RenderCharts draws the four aggregations as horizontal text bar charts.
func RenderCharts(snap models.ChartSnapshot, width int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("Visualização dos Dados") + "\n")

	if snap.Err != "" {
		b.WriteString(styles.ErrorStyle().Render("Erro: "+snap.Err) + "\n\n")
	}
	if snap.Loading && snap.Data.Empty() {
		b.WriteString(styles.MutedStyle().Render("Carregando...") + "\n")
		return b.String()
	}
	if snap.Data.Empty() {
		b.WriteString(styles.MutedStyle().Render("Sem dados. Faça upload de um arquivo e pressione r.") + "\n")
		return b.String()
	}

	temporal := make([]models.ChartPoint, 0, len(snap.Data.Temporal))
	for _, p := range snap.Data.Temporal {
		temporal = append(temporal, models.ChartPoint{Name: p.Date, Value: p.Quantidade})
	}

	b.WriteString(renderBarChart("Status dos Contratos", snap.Data.Status, width))
	b.WriteString(renderBarChart("Distribuição por Modalidade", snap.Data.Modalidade, width))
	b.WriteString(renderBarChart("Evolução Temporal", temporal, width))
	b.WriteString(renderBarChart("Contratos por Responsável", snap.Data.Responsavel, width))

	if !snap.UpdatedAt.IsZero() {
		b.WriteString(styles.MutedStyle().Render("Atualizado às "+snap.UpdatedAt.Format("15:04:05")) + "\n")
	}
	return b.String()
}

func renderBarChart(title string, points []models.ChartPoint, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n")
	if len(points) == 0 {
		b.WriteString(styles.MutedStyle().Render("  sem dados") + "\n\n")
		return b.String()
	}

	maxValue := 0.0
	for _, p := range points {
		maxValue = max(maxValue, p.Value)
	}
	barSpace := max(width-labelWidth-16, 10)

	for i, p := range points {
		n := 0
		if maxValue > 0 {
			n = int(p.Value / maxValue * float64(barSpace))
		}
		color := styles.ChartColors[i%len(styles.ChartColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "  %-*s %s %g\n", labelWidth, truncate(p.Name, labelWidth), bar, p.Value)
	}
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
