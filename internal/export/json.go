package export

import (
	"encoding/json"
	"io"

	"github.com/analisai/analisai/internal/models"
)

// JSONExporter writes the snapshot as indented JSON
type JSONExporter struct{}

func (e *JSONExporter) Export(snap models.ChartSnapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(snap)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
