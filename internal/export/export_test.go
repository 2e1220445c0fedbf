package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/analisai/analisai/internal/models"
)

func testSnapshot() models.ChartSnapshot {
	return models.ChartSnapshot{
		Data: models.ChartData{
			Status:      []models.ChartPoint{{Name: "Vigente", Value: 8}, {Name: "Encerrado", Value: 2}},
			Modalidade:  []models.ChartPoint{{Name: "Pregão", Value: 5}},
			Temporal:    []models.TemporalPoint{{Date: "2024-01", Quantidade: 3}},
			Responsavel: []models.ChartPoint{{Name: "Ana | Gestão", Value: 2}},
		},
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		ext     string
		wantErr bool
	}{
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := NewExporter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, exp.Extension())
		})
	}
}

func TestJSONExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONExporter{}).Export(testSnapshot(), &buf))

	var got models.ChartSnapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSnapshot().Data, got.Data)
	assert.True(t, strings.Contains(buf.String(), "  \"data\""))
}

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLExporter{}).Export(testSnapshot(), &buf))

	var got models.ChartSnapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSnapshot().Data, got.Data)
	assert.True(t, testSnapshot().UpdatedAt.Equal(got.UpdatedAt))
}

func TestMarkdownExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownExporter{}).Export(testSnapshot(), &buf))
	out := buf.String()

	assert.Contains(t, out, "# Análise de Contratos")
	assert.Contains(t, out, "| Vigente | 8 |")
	assert.Contains(t, out, "| 2024-01 | 3 |")
	assert.Contains(t, out, "| Ana \\| Gestão | 2 |")
	assert.Contains(t, out, "2024-05-01T12:00:00Z")
}

func TestMarkdownExporter_EmptySlots(t *testing.T) {
	var buf bytes.Buffer
	snap := models.ChartSnapshot{Err: "Nenhum arquivo carregado"}
	require.NoError(t, (&MarkdownExporter{}).Export(snap, &buf))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "_Sem dados._"))
	assert.Contains(t, out, "**Erro:** Nenhum arquivo carregado")
	assert.NotContains(t, out, "Atualizado em")
}
