package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analisai/analisai/internal/models"
)

func TestRenderMessages_FormatsAssistant(t *testing.T) {
	out := RenderMessages([]models.ChatMessage{
		{Role: models.RoleUser, Content: "Resumo?"},
		{Role: models.RoleAssistant, Content: "### Resumo\n**8** vigentes"},
	}, true, 2)

	assert.Contains(t, out, "Resumo?")
	assert.Contains(t, out, "8 vigentes")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "###")
	assert.Contains(t, out, "Analisando..")
}

func TestRenderUploads(t *testing.T) {
	out := RenderUploads([]models.UploadItem{
		{Name: "a.csv", Status: models.UploadSuccess},
		{Name: "b.csv", Status: models.UploadError, Err: "Formato inválido"},
		{Name: "c.csv", Status: models.UploadIdle},
	}, 2, 0)

	assert.Contains(t, out, "Enviado")
	assert.Contains(t, out, "Erro: Formato inválido")
	assert.Contains(t, out, "Aguardando")
	assert.Contains(t, out, "> ")

	assert.Contains(t, RenderUploads(nil, 0, 0), "Nenhum arquivo")
}

func TestRenderCharts(t *testing.T) {
	out := RenderCharts(models.ChartSnapshot{Data: models.ChartData{
		Status:   []models.ChartPoint{{Name: "Vigente", Value: 4}, {Name: "Encerrado", Value: 2}},
		Temporal: []models.TemporalPoint{{Date: "2024-01", Quantidade: 1}},
	}}, 80)

	assert.Contains(t, out, "Status dos Contratos")
	assert.Contains(t, out, "Vigente")
	assert.Contains(t, out, "2024-01")
	assert.True(t, strings.Count(out, "sem dados") >= 2)

	empty := RenderCharts(models.ChartSnapshot{Err: "Nenhum arquivo carregado"}, 80)
	assert.Contains(t, empty, "Erro: Nenhum arquivo carregado")
}

func TestRenderConnection(t *testing.T) {
	assert.Contains(t, RenderConnection(models.ConnectionState{}, "http://localhost:8000/api"), "Pressione t")
	ok := RenderConnection(models.ConnectionState{Checked: true, OK: true, Message: "Conexão OK: API funcionando"}, "x")
	assert.Contains(t, ok, "Conexão OK")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "Secre…", truncate("Secretaria", 6))
}
