package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAIResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading and bold", "### Title\n\n**bold** text\n  line2  ", "Title\n\nbold text\n\nline2"},
		{"plain", "uma linha", "uma linha"},
		{"only markers", "###\n**\n", ""},
		{"empty", "", ""},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"single hash kept", "# Resumo", "# Resumo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAIResponse(tt.in))
		})
	}
}

func TestFormatAIResponse_Idempotent(t *testing.T) {
	once := FormatAIResponse("### Análise\n**Total:** 12 contratos\n\n- vigentes: 8")
	assert.Equal(t, once, FormatAIResponse(once))
	assert.NotContains(t, once, "**")
	assert.NotContains(t, once, "###")
}
