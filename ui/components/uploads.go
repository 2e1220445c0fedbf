package components

import (
	"fmt"
	"strings"

	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/ui/styles"
)

// RenderUploads draws the upload queue with one status badge per item.
func RenderUploads(items []models.UploadItem, selected int, loadingDots int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("Upload de Arquivos") + "\n")

	if len(items) == 0 {
		b.WriteString(styles.MutedStyle().Render("Nenhum arquivo selecionado. Formatos aceitos: CSV, Excel, JSON.") + "\n")
		return b.String()
	}

	for i, item := range items {
		cursor := "  "
		name := item.Name
		if i == selected {
			cursor = "> "
			name = styles.SelectedStyle().Render(name)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, name, statusBadge(item, loadingDots))
	}
	return b.String()
}

func statusBadge(item models.UploadItem, loadingDots int) string {
	switch item.Status {
	case models.UploadUploading:
		return styles.PendingStyle().Render("Enviando" + strings.Repeat(".", loadingDots))
	case models.UploadSuccess:
		return styles.SuccessStyle().Render("✓ Enviado")
	case models.UploadError:
		msg := "✗ Erro"
		if item.Err != "" {
			msg += ": " + item.Err
		}
		return styles.ErrorStyle().Render(msg)
	default:
		return styles.MutedStyle().Render("Aguardando")
	}
}
