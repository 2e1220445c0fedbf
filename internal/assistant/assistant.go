// Package assistant answers analysis questions by calling an
// OpenAI-compatible chat completion API directly, grounding each prompt on
// the current contract aggregations.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sashabaranov/go-openai"

	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

const (
	systemPrompt = `Você é um assistente especializado em análise de contratos.
Use as informações fornecidas sobre os contratos para responder às perguntas do usuário de forma clara e objetiva.
Sempre baseie suas respostas nos dados concretos das análises.`

	// NoDataContext is sent when the aggregations cannot be fetched.
	NoDataContext = "Não foi possível obter os dados das análises."

	contextKey   = "analysis-context"
	contextTTL   = 5 * time.Minute
	temperature  = 0.7
	maxTokens    = 1000
	defaultModel = openai.GPT4oMini
)

var ErrEmptyResponse = errors.New("assistant returned no choices")

// DataSource provides the aggregations used as prompt context.
type DataSource interface {
	Fetch(ctx context.Context) (models.ChartData, error)
}

// Completer is the subset of *openai.Client the assistant needs.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Assistant struct {
	client Completer
	source DataSource
	model  string
	cache  *cache.Cache
}

// New builds an assistant backed by an OpenAI client for cfg.
func New(cfg Config, source DataSource) *Assistant {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return NewWithClient(openai.NewClientWithConfig(clientConfig), cfg.Model, source)
}

func NewWithClient(client Completer, model string, source DataSource) *Assistant {
	if model == "" {
		model = defaultModel
	}
	return &Assistant{
		client: client,
		source: source,
		model:  model,
		cache:  cache.New(contextTTL, 2*contextTTL),
	}
}

// Chat implements core.ChatBackend.
func (a *Assistant) Chat(ctx context.Context, message string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleSystem, Content: "Dados das análises:\n" + a.analysisContext(ctx)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Invalidate drops the cached context, e.g. after a new upload.
func (a *Assistant) Invalidate() {
	a.cache.Delete(contextKey)
}

func (a *Assistant) analysisContext(ctx context.Context) string {
	if cached, ok := a.cache.Get(contextKey); ok {
		return cached.(string)
	}

	data, err := a.source.Fetch(ctx)
	if err != nil {
		logging.Warn("failed to fetch analysis context", "err", err)
		return NoDataContext
	}

	text := FormatContext(data)
	a.cache.Set(contextKey, text, cache.DefaultExpiration)
	return text
}

// FormatContext renders the four aggregations as the prompt context block.
func FormatContext(d models.ChartData) string {
	var b strings.Builder
	b.WriteString("Aqui estão os dados atuais dos contratos:\n")

	writePoints(&b, "Status dos Contratos", d.Status)
	writePoints(&b, "Modalidades", d.Modalidade)

	b.WriteString("\nEvolução Temporal:\n")
	for _, p := range d.Temporal {
		fmt.Fprintf(&b, "- %s: %g\n", p.Date, p.Quantidade)
	}

	writePoints(&b, "Responsáveis", d.Responsavel)
	return b.String()
}

func writePoints(b *strings.Builder, title string, points []models.ChartPoint) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, p := range points {
		fmt.Fprintf(b, "- %s: %g\n", p.Name, p.Value)
	}
}
