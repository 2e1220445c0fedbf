package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/update"
)

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (ed *EventDispatcher) Start() {
	ed.eventBus.SetErrorCallback(func(err eventbus.EventBusError) {
		logging.Warn("event bus error", "op", err.Operation, "err", err.Err)
	})
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}

// ListenForUIEvents waits for the next core event and hands it to bubbletea.
// The model re-issues the command after each event. It returns nil once the
// dispatcher stops or the bus closes.
func (ed *EventDispatcher) ListenForUIEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case event, ok := <-ed.eventBus.CoreToUI():
			if !ok {
				return nil
			}
			return update.CoreEventMsg{Event: event}
		}
	}
}
