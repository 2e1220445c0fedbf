package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

// ChatBackend answers a single chat message.
type ChatBackend interface {
	Chat(ctx context.Context, message string) (string, error)
}

// ChatSnapshot is the chat state handed to the UI.
type ChatSnapshot struct {
	Messages []models.ChatMessage
	Input    string
	Pending  bool
}

// ChatController drives the analysis conversation.
type ChatController struct {
	backend  ChatBackend
	state    *ChatState
	onChange func(ChatSnapshot)
}

func NewChatController(backend ChatBackend) *ChatController {
	return &ChatController{
		backend: backend,
		state:   NewChatState(),
	}
}

// OnChange registers a callback receiving every transcript change.
// It must be set before the first Send.
func (cc *ChatController) OnChange(fn func(ChatSnapshot)) {
	cc.onChange = fn
}

func (cc *ChatController) SetInput(input string) { cc.state.SetInput(input) }
func (cc *ChatController) Input() string         { return cc.state.Input() }
func (cc *ChatController) Pending() bool         { return cc.state.IsProcessing() }

func (cc *ChatController) Messages() []models.ChatMessage {
	return cc.state.GetMessages()
}

func (cc *ChatController) Snapshot() ChatSnapshot {
	return ChatSnapshot{
		Messages: cc.state.GetMessages(),
		Input:    cc.state.Input(),
		Pending:  cc.state.IsProcessing(),
	}
}

// Send posts text to the backend. Blank text is ignored. The user message is
// appended before the request; a failed request appends FallbackReply.
func (cc *ChatController) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cc.state.StartProcessingWithUserMessage(text)
	cc.notify()

	reply, err := cc.backend.Chat(ctx, text)
	if err != nil {
		logging.Warn("chat request failed", "err", err)
		cc.state.FinishProcessingWithFallback(err)
		cc.notify()
		return err
	}

	cc.state.FinishProcessingWithAssistantMessage(reply)
	cc.notify()
	return nil
}

// SendPreset sends the prompt of the analysis preset at index.
func (cc *ChatController) SendPreset(ctx context.Context, index int) error {
	if index < 0 || index >= len(Presets) {
		return fmt.Errorf("preset %d: %w", index, ErrNotFound)
	}
	return cc.Send(ctx, Presets[index].Prompt)
}

func (cc *ChatController) notify() {
	if cc.onChange != nil {
		cc.onChange(cc.Snapshot())
	}
}
