package components

import (
	"strings"

	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/ui/styles"
)

func RenderConnection(state models.ConnectionState, serverURL string) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("Teste de Conexão") + "\n")
	b.WriteString("Servidor: " + serverURL + "\n\n")

	switch {
	case !state.Checked:
		b.WriteString(styles.MutedStyle().Render("Pressione t para testar a conexão com a API.") + "\n")
	case state.OK:
		b.WriteString(styles.SuccessStyle().Render(state.Message) + "\n")
	default:
		b.WriteString(styles.ErrorStyle().Render(state.Message) + "\n")
	}
	return b.String()
}
