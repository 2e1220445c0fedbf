package api

import "github.com/analisai/analisai/internal/models"

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
	Type     string `json:"type,omitempty"`
}

// CategoryAnalysis is returned by the status, modalidade and responsavel aggregations.
type CategoryAnalysis struct {
	Data []models.ChartPoint `json:"data"`
}

// TemporalAnalysis is returned by the temporal aggregation.
type TemporalAnalysis struct {
	Data []models.TemporalPoint `json:"data"`
}

// CombinedAnalysis is returned by GET /analise.
type CombinedAnalysis struct {
	Status      CategoryAnalysis `json:"status_analysis"`
	Modalidade  CategoryAnalysis `json:"modalidade_analysis"`
	Temporal    TemporalAnalysis `json:"temporal_analysis"`
	Responsavel CategoryAnalysis `json:"responsavel_analysis"`
}

// ChartData flattens the combined payload into chart slots.
func (a CombinedAnalysis) ChartData() models.ChartData {
	return models.ChartData{
		Status:      a.Status.Data,
		Modalidade:  a.Modalidade.Data,
		Temporal:    a.Temporal.Data,
		Responsavel: a.Responsavel.Data,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// TestResponse is returned by GET /test.
type TestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
