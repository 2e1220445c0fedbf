package core

import (
	"sync"

	"github.com/analisai/analisai/internal/models"
)

// FallbackReply replaces the assistant answer whenever a chat request fails.
const FallbackReply = "Desculpe, ocorreu um erro ao processar sua mensagem."

// ChatState manages the transcript. Messages are only ever appended.
type ChatState struct {
	mu           sync.RWMutex
	messages     []models.ChatMessage
	input        string
	isProcessing bool
	lastError    error
}

func NewChatState() *ChatState {
	return &ChatState{
		messages: make([]models.ChatMessage, 0),
	}
}

func (cs *ChatState) GetMessages() []models.ChatMessage {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	result := make([]models.ChatMessage, len(cs.messages))
	copy(result, cs.messages)
	return result
}

func (cs *ChatState) SetInput(input string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.input = input
}

func (cs *ChatState) Input() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.input
}

func (cs *ChatState) IsProcessing() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.isProcessing
}

func (cs *ChatState) GetLastError() error {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastError
}

// Atomic operations for event ordering
func (cs *ChatState) StartProcessingWithUserMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.isProcessing = true
	cs.lastError = nil
	cs.input = ""
	cs.messages = append(cs.messages, models.ChatMessage{
		Role:    models.RoleUser,
		Content: content,
	})
}

func (cs *ChatState) FinishProcessingWithAssistantMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.isProcessing = false
	cs.lastError = nil
	cs.messages = append(cs.messages, models.ChatMessage{
		Role:    models.RoleAssistant,
		Content: content,
	})
}

// FinishProcessingWithFallback records err but shows the fixed apology instead of it.
func (cs *ChatState) FinishProcessingWithFallback(err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.isProcessing = false
	cs.lastError = err
	cs.messages = append(cs.messages, models.ChatMessage{
		Role:    models.RoleAssistant,
		Content: FallbackReply,
	})
}
