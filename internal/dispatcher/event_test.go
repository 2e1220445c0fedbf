package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/update"
)

func TestListenForUIEvents(t *testing.T) {
	eb := eventbus.NewEventBus()
	d := NewEventDispatcher(eb)
	d.Start()

	require.NoError(t, eb.SendToUI(eventbus.NoticeEvent{Text: "oi"}))
	msg := d.ListenForUIEvents()()
	assert.Equal(t, update.CoreEventMsg{Event: eventbus.NoticeEvent{Text: "oi"}}, msg)

	eb.Close()
	assert.Nil(t, d.ListenForUIEvents()())
}

func TestListenForUIEvents_Stopped(t *testing.T) {
	eb := eventbus.NewEventBus()
	t.Cleanup(eb.Close)
	d := NewEventDispatcher(eb)

	d.Stop()
	assert.Nil(t, d.ListenForUIEvents()())
	assert.Same(t, eb, d.GetEventBus())
}
