// Package plot renders chart snapshots to PNG files with go-chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/analisai/analisai/internal/models"
)

const (
	width  = 1024
	height = 512
)

var ErrNoData = errors.New("chart has no data")

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
}

// Chart is one of the four aggregation charts.
type Chart struct {
	Slug  string
	Title string
	Color drawing.Color
	Bars  []Bar
}

// Charts splits the snapshot into the four renderable charts.
func Charts(d models.ChartData) []Chart {
	temporal := make([]Bar, 0, len(d.Temporal))
	for _, p := range d.Temporal {
		temporal = append(temporal, Bar{Label: p.Date, Value: p.Quantidade})
	}
	return []Chart{
		{Slug: "status", Title: "Status dos Contratos", Color: chart.ColorBlue, Bars: categoryBars(d.Status)},
		{Slug: "modalidade", Title: "Distribuição por Modalidade", Color: chart.ColorGreen, Bars: categoryBars(d.Modalidade)},
		{Slug: "temporal", Title: "Evolução Temporal", Color: chart.ColorOrange, Bars: temporal},
		{Slug: "responsavel", Title: "Contratos por Responsável", Color: chart.ColorCyan, Bars: categoryBars(d.Responsavel)},
	}
}

func categoryBars(points []models.ChartPoint) []Bar {
	bars := make([]Bar, 0, len(points))
	for _, p := range points {
		bars = append(bars, Bar{Label: p.Name, Value: p.Value})
	}
	return bars
}

// Render writes c as a PNG bar chart.
func Render(c Chart, w io.Writer) error {
	if len(c.Bars) == 0 {
		return fmt.Errorf("%s: %w", c.Slug, ErrNoData)
	}

	maxValue := 0.0
	values := make([]chart.Value, 0, len(c.Bars))
	for _, b := range c.Bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		values = append(values, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: c.Color, StrokeColor: c.Color, StrokeWidth: 1},
		})
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(len(values)),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: values,
	}
	return bc.Render(chart.PNG, w)
}

// WriteAll renders every non-empty chart into dir and returns the written paths.
func WriteAll(d models.ChartData, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var written []string
	for _, c := range Charts(d) {
		if len(c.Bars) == 0 {
			continue
		}
		path := filepath.Join(dir, c.Slug+".png")
		if err := writeFile(c, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if len(written) == 0 {
		return nil, ErrNoData
	}
	return written, nil
}

func writeFile(c Chart, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(c, f)
}

func barWidth(n int) int {
	w := (width - 100) / (n * 2)
	switch {
	case w > 80:
		return 80
	case w < 8:
		return 8
	}
	return w
}
