package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/analisai/analisai/internal/models"
)

// MarkdownExporter writes one table per chart
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(snap models.ChartSnapshot, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Análise de Contratos\n\n")
	if !snap.UpdatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "**Atualizado em:** %s\n\n", snap.UpdatedAt.Format(time.RFC3339))
	}
	if snap.Err != "" {
		_, _ = fmt.Fprintf(w, "**Erro:** %s\n\n", escapeCell(snap.Err))
	}

	writeCategory(w, "Status dos Contratos", "Status", snap.Data.Status)
	writeCategory(w, "Distribuição por Modalidade", "Modalidade", snap.Data.Modalidade)

	_, _ = fmt.Fprintf(w, "## Evolução Temporal\n\n")
	if len(snap.Data.Temporal) == 0 {
		_, _ = fmt.Fprintf(w, "_Sem dados._\n\n")
	} else {
		_, _ = fmt.Fprintf(w, "| Data | Quantidade |\n|---|---:|\n")
		for _, p := range snap.Data.Temporal {
			_, _ = fmt.Fprintf(w, "| %s | %g |\n", escapeCell(p.Date), p.Quantidade)
		}
		_, _ = fmt.Fprintln(w)
	}

	writeCategory(w, "Contratos por Responsável", "Responsável", snap.Data.Responsavel)
	return nil
}

func writeCategory(w io.Writer, title, column string, points []models.ChartPoint) {
	_, _ = fmt.Fprintf(w, "## %s\n\n", title)
	if len(points) == 0 {
		_, _ = fmt.Fprintf(w, "_Sem dados._\n\n")
		return
	}
	_, _ = fmt.Fprintf(w, "| %s | Quantidade |\n|---|---:|\n", column)
	for _, p := range points {
		_, _ = fmt.Fprintf(w, "| %s | %g |\n", escapeCell(p.Name), p.Value)
	}
	_, _ = fmt.Fprintln(w)
}

// escapeCell keeps backend labels from breaking the table layout
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}
