package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/analisai/analisai/internal/logging"
)

// DefaultBaseURL is the backend address used when no profile overrides it.
const DefaultBaseURL = "http://localhost:8000/api"

// Client talks to the AnalisAI backend. Every call is a single attempt.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a client for baseURL, falling back to DefaultBaseURL when empty.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadPath uploads the file at path.
func (c *Client) UploadPath(ctx context.Context, path string) (*UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.UploadFile(ctx, filepath.Base(path), f)
}

// UploadFile sends content as the multipart field "file".
func (c *Client) UploadFile(ctx context.Context, name string, content io.Reader) (*UploadResponse, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	n, err := io.Copy(part, content)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	logging.Debug("uploading file", "name", name, "bytes", n, "url", c.baseURL+"/upload")

	var resp UploadResponse
	if err := c.do(ctx, http.MethodPost, "/upload", w.FormDataContentType(), body, uploadErrorMessage, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ContractStatus fetches the contract status breakdown.
func (c *Client) ContractStatus(ctx context.Context) (*CategoryAnalysis, error) {
	var out CategoryAnalysis
	if err := c.getJSON(ctx, "/contracts/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractModalidade fetches the breakdown by contract modality.
func (c *Client) ContractModalidade(ctx context.Context) (*CategoryAnalysis, error) {
	var out CategoryAnalysis
	if err := c.getJSON(ctx, "/contracts/modalidade", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractTemporal fetches the monthly registration series.
func (c *Client) ContractTemporal(ctx context.Context) (*TemporalAnalysis, error) {
	var out TemporalAnalysis
	if err := c.getJSON(ctx, "/contracts/temporal", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractResponsavel fetches the breakdown by responsible party.
func (c *Client) ContractResponsavel(ctx context.Context) (*CategoryAnalysis, error) {
	var out CategoryAnalysis
	if err := c.getJSON(ctx, "/contracts/responsavel", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analysis fetches all four aggregations in one call.
func (c *Client) Analysis(ctx context.Context) (*CombinedAnalysis, error) {
	var out CombinedAnalysis
	if err := c.getJSON(ctx, "/analise", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat posts a free-text message and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", err
	}
	var out chatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", "application/json", bytes.NewReader(payload), genericErrorMessage, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

// Test probes the backend health route.
func (c *Client) Test(ctx context.Context) (*TestResponse, error) {
	var out TestResponse
	if err := c.getJSON(ctx, "/test", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, genericErrorMessage, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, fallback string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Path: path, Message: err.Error(), Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debug("request failed", "method", method, "path", path, "err", err)
		return &Error{Path: path, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Path: path, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Detail != "" {
			msg = eb.Detail
		}
		logging.Debug("backend rejected request", "method", method, "path", path, "status", resp.StatusCode, "detail", msg)
		return &Error{StatusCode: resp.StatusCode, Path: path, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Path: path, Message: fmt.Sprintf("invalid response: %v", err), Err: err}
	}
	return nil
}

// Message extracts the user-facing text of err: the backend detail for
// *Error values, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
