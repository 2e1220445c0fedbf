package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analisai/analisai/internal/dispatcher"
	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/internal/update"
)

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	t.Cleanup(eb.Close)
	return NewAppModel(dispatcher.NewEventDispatcher(eb), "http://localhost:8000/api"), eb
}

func typeText(m *AppModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestAppModel_TypingAndSubmittingPaths(t *testing.T) {
	m, eb := newTestModel(t)

	typeText(m, "a.csv")
	assert.Equal(t, "a.csv", m.appModel.PathInput)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	select {
	case ev := <-eb.UIToCore():
		assert.Equal(t, eventbus.AddFilesEvent{Paths: []string{"a.csv"}}, ev)
	case <-time.After(time.Second):
		t.Fatal("no event")
	}
	assert.Empty(t, m.appModel.PathInput)
	assert.Empty(t, m.input.Value())
}

func TestAppModel_InputFollowsView(t *testing.T) {
	m, eb := newTestModel(t)

	typeText(m, "x.csv")
	m.appModel.View = models.ViewCharts
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.ViewAnalysis, m.appModel.View)
	assert.Empty(t, m.input.Value())

	typeText(m, "oi")
	assert.Equal(t, "oi", m.appModel.ChatInput)
	assert.Equal(t, "x.csv", m.appModel.PathInput)

	// r on the charts page refreshes instead of typing
	m.appModel.View = models.ViewCharts
	typeText(m, "r")
	select {
	case ev := <-eb.UIToCore():
		assert.Equal(t, eventbus.RefreshChartsEvent{}, ev)
	case <-time.After(time.Second):
		t.Fatal("no event")
	}
}

func TestAppModel_CoreEventRendered(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(update.CoreEventMsg{Event: eventbus.UploadsUpdateEvent{
		Items: []models.UploadItem{{ID: "1", Name: "contratos.csv", Status: models.UploadSuccess}},
	}})
	require.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "contratos.csv")
	assert.Contains(t, view, "Upload")
}
