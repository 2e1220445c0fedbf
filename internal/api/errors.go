package api

import "fmt"

const (
	genericErrorMessage = "Erro na requisição"
	uploadErrorMessage  = "Erro ao fazer upload do arquivo"
)

// Error is returned by every Client call that does not end in a 2xx response.
// StatusCode is 0 for transport failures.
type Error struct {
	StatusCode int
	Path       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("api %s: %d %s", e.Path, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorBody is the shape the backend uses for failures.
type errorBody struct {
	Detail string `json:"detail"`
}
