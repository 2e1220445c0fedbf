package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("").BaseURL())
	assert.Equal(t, "http://example.com/api", NewClient(" http://example.com/api/ ").BaseURL())
}

func TestClient_UploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "contratos.csv", header.Filename)
		assert.Equal(t, "a,b\n1,2\n", string(content))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":  "Arquivo carregado com sucesso",
			"filename": header.Filename,
			"size":     len(content),
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.UploadFile(context.Background(), "contratos.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "contratos.csv", resp.Filename)
	assert.Equal(t, "Arquivo carregado com sucesso", resp.Message)
	assert.EqualValues(t, 8, resp.Size)
}

func TestClient_UploadPath(t *testing.T) {
	var gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotName = header.Filename
		w.Write([]byte(`{"message":"ok","filename":"` + header.Filename + `"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "dados.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	_, err := NewClient(srv.URL).UploadPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "dados.json", gotName)

	_, err = NewClient(srv.URL).UploadPath(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		call    func(*Client) error
		wantMsg string
	}{
		{
			name:   "detail field is surfaced",
			status: http.StatusBadRequest,
			body:   `{"detail":"Formato de arquivo não suportado"}`,
			call: func(c *Client) error {
				_, err := c.UploadFile(context.Background(), "x.txt", strings.NewReader("x"))
				return err
			},
			wantMsg: "Formato de arquivo não suportado",
		},
		{
			name:   "upload without JSON body uses upload fallback",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			call: func(c *Client) error {
				_, err := c.UploadFile(context.Background(), "x.csv", strings.NewReader("x"))
				return err
			},
			wantMsg: uploadErrorMessage,
		},
		{
			name:   "GET without detail uses generic fallback",
			status: http.StatusInternalServerError,
			body:   `{}`,
			call: func(c *Client) error {
				_, err := c.ContractStatus(context.Background())
				return err
			},
			wantMsg: genericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := tt.call(NewClient(srv.URL))
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantMsg, Message(err))
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Test(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestClient_Aggregations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contracts/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"Ativo","value":3},{"name":"Encerrado","value":1}]}`))
	})
	mux.HandleFunc("/contracts/modalidade", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"Pregão","value":2}]}`))
	})
	mux.HandleFunc("/contracts/temporal", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"date":"2024-01","quantidade":4}]}`))
	})
	mux.HandleFunc("/contracts/responsavel", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})
	mux.HandleFunc("/analise", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status_analysis":{"data":[{"name":"Ativo","value":3}]},
			"modalidade_analysis":{"data":[{"name":"Pregão","value":2}]},
			"temporal_analysis":{"data":[{"date":"2024-01","quantidade":4}]},
			"responsavel_analysis":{"data":[{"name":"Maria","value":5}]}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	status, err := c.ContractStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status.Data, 2)
	assert.Equal(t, "Ativo", status.Data[0].Name)
	assert.EqualValues(t, 3, status.Data[0].Value)

	modalidade, err := c.ContractModalidade(ctx)
	require.NoError(t, err)
	assert.Len(t, modalidade.Data, 1)

	temporal, err := c.ContractTemporal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01", temporal.Data[0].Date)
	assert.EqualValues(t, 4, temporal.Data[0].Quantidade)

	responsavel, err := c.ContractResponsavel(ctx)
	require.NoError(t, err)
	assert.Empty(t, responsavel.Data)

	combined, err := c.Analysis(ctx)
	require.NoError(t, err)
	data := combined.ChartData()
	assert.Equal(t, "Maria", data.Responsavel[0].Name)
	assert.False(t, data.Empty())
}

func TestClient_ChatAndTest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Write([]byte(`{"response":"eco: ` + req.Message + `"}`))
	})
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","message":"Backend está funcionando"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)

	reply, err := c.Chat(context.Background(), "olá")
	require.NoError(t, err)
	assert.Equal(t, "eco: olá", reply)

	probe, err := c.Test(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", probe.Status)
	assert.Equal(t, "Backend está funcionando", probe.Message)
}
