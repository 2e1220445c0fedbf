package models

// View identifies one of the dashboard pages.
type View int

const (
	ViewUpload View = iota
	ViewCharts
	ViewAnalysis
	ViewConnection
)

var viewTitles = [...]string{"Upload", "Visualização", "Análise", "Conexão"}

func (v View) String() string {
	if int(v) < 0 || int(v) >= len(viewTitles) {
		return "?"
	}
	return viewTitles[v]
}

// Views lists every page in tab order.
func Views() []View {
	return []View{ViewUpload, ViewCharts, ViewAnalysis, ViewConnection}
}

// ConnectionState is the result of the last backend probe.
type ConnectionState struct {
	Checked bool
	OK      bool
	Message string
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	View        View            // Active page
	Uploads     []UploadItem    // Upload queue from core
	Selected    int             // Cursor in the upload queue
	PathInput   string          // Path being typed on the upload page
	Charts      ChartSnapshot   // Chart state from core
	Messages    []ChatMessage   // Transcript from core
	ChatInput   string          // Chat input buffer
	ChatPending bool            // A chat request is in flight
	Connection  ConnectionState // Last /test probe
	Status      string          // Status bar text
	LoadingDots int             // Animation counter for loading dots
	Width       int             // Terminal width
	Height      int             // Terminal height
}
