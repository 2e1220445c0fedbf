package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/analisai/analisai/internal/dispatcher"
	"github.com/analisai/analisai/internal/models"
	"github.com/analisai/analisai/internal/update"
	"github.com/analisai/analisai/ui/components"
	"github.com/analisai/analisai/ui/styles"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	serverURL  string
	input      textinput.Model
	spinner    spinner.Model
}

func NewAppModel(disp *dispatcher.EventDispatcher, serverURL string) *AppModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 4096
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &AppModel{
		appModel:   createInitialAppModel(),
		dispatcher: disp,
		serverURL:  serverURL,
		input:      ti,
		spinner:    sp,
	}
	m.syncInput()
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.spinner.Tick,
		textinput.Blink,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	cmd, handled := update.HandleUpdateWithEventBus(&m.appModel, msg, m.dispatcher.GetEventBus())
	if handled {
		m.syncInput()
		return m, cmd
	}

	// Everything else belongs to the text input of the active page.
	if field := m.inputField(); field != nil {
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		*field = m.input.Value()
		return m, tea.Batch(cmd, inputCmd)
	}
	return m, cmd
}

// inputField returns the model field edited on the active page.
func (m *AppModel) inputField() *string {
	switch m.appModel.View {
	case models.ViewUpload:
		return &m.appModel.PathInput
	case models.ViewAnalysis:
		return &m.appModel.ChatInput
	}
	return nil
}

// syncInput mirrors the active page's buffer into the text input after the
// handlers changed view or cleared it.
func (m *AppModel) syncInput() {
	field := m.inputField()
	if field == nil {
		return
	}
	switch m.appModel.View {
	case models.ViewUpload:
		m.input.Placeholder = "caminho/para/contratos.csv (aceita vários e *.csv)"
	case models.ViewAnalysis:
		m.input.Placeholder = "Digite sua pergunta sobre os dados..."
	}
	if m.input.Value() != *field {
		m.input.SetValue(*field)
		m.input.CursorEnd()
	}
}

func (m *AppModel) View() string {
	var b strings.Builder
	width := m.appModel.Width
	if width == 0 {
		width = 80
	}

	b.WriteString(components.RenderTabs(m.appModel.View))

	switch m.appModel.View {
	case models.ViewUpload:
		b.WriteString(components.RenderUploads(m.appModel.Uploads, m.appModel.Selected, m.appModel.LoadingDots))
		b.WriteString("\n" + components.RenderInput(m.input.View(), width) + "\n")
		b.WriteString(styles.HelpStyle().Render("enter adicionar • ↑/↓ selecionar • ctrl+u enviar • ctrl+a enviar todos • ctrl+d remover") + "\n")
	case models.ViewCharts:
		b.WriteString(components.RenderCharts(m.appModel.Charts, width))
		b.WriteString(styles.HelpStyle().Render("r atualizar") + "\n")
	case models.ViewAnalysis:
		b.WriteString(styles.TitleStyle().Render("Análise com IA") + "\n")
		if len(m.appModel.Messages) == 0 {
			b.WriteString(components.RenderPresets() + "\n")
		}
		b.WriteString(components.RenderMessages(m.appModel.Messages, m.appModel.ChatPending, m.appModel.LoadingDots))
		b.WriteString(components.RenderInput(m.input.View(), width) + "\n")
		b.WriteString(styles.HelpStyle().Render("enter enviar • F1-F4 análises prontas") + "\n")
	case models.ViewConnection:
		b.WriteString(components.RenderConnection(m.appModel.Connection, m.serverURL))
	}

	b.WriteString(styles.HelpStyle().Render("tab trocar página • esc sair") + "\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, update.Busy(&m.appModel), m.spinner.View(), width))

	return b.String()
}
