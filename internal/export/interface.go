package export

import (
	"fmt"
	"io"

	"github.com/analisai/analisai/internal/models"
)

// Exporter writes a chart snapshot in one output format
type Exporter interface {
	Export(snap models.ChartSnapshot, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}
