package update

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/models"
)

// NavigateDelay keeps the upload success indicator visible before the
// dashboard switches to the charts.
const NavigateDelay = 1500 * time.Millisecond

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit, true
	case "tab":
		return switchView(appModel, (appModel.View+1)%models.View(len(models.Views())), eb), true
	case "shift+tab":
		n := models.View(len(models.Views()))
		return switchView(appModel, (appModel.View+n-1)%n, eb), true
	}

	switch appModel.View {
	case models.ViewUpload:
		return handleUploadKey(appModel, keyMsg, eb)
	case models.ViewCharts:
		return handleChartsKey(appModel, keyMsg, eb)
	case models.ViewAnalysis:
		return handleAnalysisKey(appModel, keyMsg, eb)
	case models.ViewConnection:
		return handleConnectionKey(appModel, keyMsg, eb)
	}
	return nil, false
}

func handleUploadKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "enter":
		paths := ExpandPaths(appModel.PathInput)
		if len(paths) == 0 {
			return nil, true
		}
		if send(appModel, eb, eventbus.AddFilesEvent{Paths: paths}) {
			appModel.PathInput = ""
		}
	case "up":
		if appModel.Selected > 0 {
			appModel.Selected--
		}
	case "down":
		if appModel.Selected < len(appModel.Uploads)-1 {
			appModel.Selected++
		}
	case "ctrl+u":
		if item, ok := selectedUpload(appModel); ok {
			send(appModel, eb, eventbus.UploadEvent{ID: item.ID})
		}
	case "ctrl+a":
		send(appModel, eb, eventbus.UploadAllEvent{})
	case "ctrl+d", "delete":
		if _, ok := selectedUpload(appModel); ok {
			send(appModel, eb, eventbus.RemoveUploadEvent{Index: appModel.Selected})
		}
	default:
		return nil, false
	}
	return nil, true
}

func handleChartsKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "r", "enter":
		send(appModel, eb, eventbus.RefreshChartsEvent{})
		return nil, true
	}
	return nil, false
}

func handleAnalysisKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch key := keyMsg.String(); key {
	case "enter":
		if strings.TrimSpace(appModel.ChatInput) == "" || appModel.ChatPending {
			return nil, true
		}
		if send(appModel, eb, eventbus.SendMessageEvent{Message: appModel.ChatInput}) {
			appModel.ChatInput = ""
		}
		return nil, true
	case "f1", "f2", "f3", "f4":
		if !appModel.ChatPending {
			idx := int(key[1] - '1')
			if idx < len(core.Presets) {
				send(appModel, eb, eventbus.SendPresetEvent{Index: idx})
			}
		}
		return nil, true
	}
	return nil, false
}

func handleConnectionKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "t", "enter":
		appModel.Status = "Testando conexão"
		send(appModel, eb, eventbus.PingEvent{})
		return nil, true
	}
	return nil, false
}

func switchView(appModel *models.AppModel, view models.View, eb *eventbus.EventBus) tea.Cmd {
	appModel.View = view
	if view == models.ViewCharts {
		send(appModel, eb, eventbus.RefreshChartsEvent{})
	}
	return nil
}

func selectedUpload(appModel *models.AppModel) (models.UploadItem, bool) {
	if appModel.Selected < 0 || appModel.Selected >= len(appModel.Uploads) {
		return models.UploadItem{}, false
	}
	return appModel.Uploads[appModel.Selected], true
}

// send reports whether the event reached the core.
func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) bool {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Erro ao enviar evento: " + err.Error()
		return false
	}
	return true
}

// ExpandPaths splits the typed input on whitespace and expands globs.
// Patterns without matches are kept so the queue can report them.
func ExpandPaths(input string) []string {
	var paths []string
	for _, field := range strings.Fields(input) {
		matches, err := filepath.Glob(field)
		if err != nil || len(matches) == 0 {
			paths = append(paths, field)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// NavigateMsg switches the active page.
type NavigateMsg struct {
	View models.View
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.UploadsUpdateEvent:
		appModel.Uploads = event.Items
		if appModel.Selected >= len(appModel.Uploads) {
			appModel.Selected = max(len(appModel.Uploads)-1, 0)
		}
	case eventbus.UploadSucceededEvent:
		appModel.Status = fmt.Sprintf("Upload concluído: %s", event.Filename)
		return tea.Tick(NavigateDelay, func(time.Time) tea.Msg {
			return NavigateMsg{View: models.ViewCharts}
		})
	case eventbus.ChartsUpdateEvent:
		appModel.Charts = event.Snapshot
		if event.Snapshot.Err != "" {
			appModel.Status = "Erro: " + event.Snapshot.Err
		} else if event.Snapshot.Loading {
			appModel.Status = "Carregando gráficos"
		} else {
			appModel.Status = "Pronto"
		}
	case eventbus.ChatUpdateEvent:
		appModel.Messages = event.Messages
		appModel.ChatPending = event.Pending
		if event.Pending {
			appModel.Status = "Analisando"
		} else {
			appModel.Status = "Pronto"
		}
	case eventbus.ConnectionEvent:
		appModel.Connection = event.State
		appModel.Status = event.State.Message
	case eventbus.NoticeEvent:
		appModel.Status = event.Text
	}

	return nil
}

// HandleNavigateMsg moves to the requested page, refreshing the charts when
// they become visible.
func HandleNavigateMsg(appModel *models.AppModel, msg NavigateMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.View == msg.View {
		return nil
	}
	return switchView(appModel, msg.View, eb)
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

// Busy reports whether any request the user waits on is in flight.
func Busy(appModel *models.AppModel) bool {
	if appModel.ChatPending || appModel.Charts.Loading {
		return true
	}
	for _, item := range appModel.Uploads {
		if item.Status == models.UploadUploading {
			return true
		}
	}
	return false
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if Busy(appModel) {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
