package models

import "time"

// ChartPoint is a category/count pair returned by the categorical aggregations.
type ChartPoint struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// TemporalPoint is a month/count pair returned by the temporal aggregation.
type TemporalPoint struct {
	Date       string  `json:"date" yaml:"date"`
	Quantidade float64 `json:"quantidade" yaml:"quantidade"`
}

// ChartData groups the four chart slots. They are always replaced together.
type ChartData struct {
	Status      []ChartPoint    `json:"status" yaml:"status"`
	Modalidade  []ChartPoint    `json:"modalidade" yaml:"modalidade"`
	Temporal    []TemporalPoint `json:"temporal" yaml:"temporal"`
	Responsavel []ChartPoint    `json:"responsavel" yaml:"responsavel"`
}

// Empty reports whether no slot holds any point.
func (d ChartData) Empty() bool {
	return len(d.Status) == 0 && len(d.Modalidade) == 0 && len(d.Temporal) == 0 && len(d.Responsavel) == 0
}

// ChartSnapshot is the chart controller state handed to the UI and exporters.
type ChartSnapshot struct {
	Data      ChartData `json:"data" yaml:"data"`
	Loading   bool      `json:"loading" yaml:"loading"`
	Err       string    `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}
