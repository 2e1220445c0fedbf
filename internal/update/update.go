package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/models"
)

// HandleUpdateWithEventBus routes a bubbletea message. The boolean reports
// whether the message was consumed; unconsumed key presses belong to the
// active text input.
func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil, true
	case TickMsg:
		return HandleTickMsg(appModel), true
	case NavigateMsg:
		return HandleNavigateMsg(appModel, msg, eb), true
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg), true
	}
	return nil, false
}
