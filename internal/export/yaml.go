package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/analisai/analisai/internal/models"
)

// YAMLExporter writes the snapshot as YAML
type YAMLExporter struct{}

func (e *YAMLExporter) Export(snap models.ChartSnapshot, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(snap)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
