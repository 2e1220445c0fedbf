package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/analisai/analisai/internal/api"
	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

// Prober checks that the backend answers.
type Prober interface {
	Test(ctx context.Context) (*api.TestResponse, error)
}

// Service connects the controllers to the UI through the event bus.
type Service struct {
	uploads  *UploadController
	charts   *ChartController
	chat     *ChatController
	prober   Prober
	eventBus *eventbus.EventBus
	uploaded func()
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewService(uploads *UploadController, charts *ChartController, chat *ChatController, prober Prober, eb *eventbus.EventBus) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		uploads:  uploads,
		charts:   charts,
		chat:     chat,
		prober:   prober,
		eventBus: eb,
		ctx:      ctx,
		cancel:   cancel,
	}

	uploads.OnChange(func(models.UploadItem) { s.pushUploads() })
	uploads.OnSuccess(func(item models.UploadItem, resp *api.UploadResponse) {
		if s.uploaded != nil {
			s.uploaded()
		}
		s.push(eventbus.UploadSucceededEvent{Item: item, Filename: resp.Filename})
	})
	charts.OnChange(func(snap models.ChartSnapshot) {
		s.push(eventbus.ChartsUpdateEvent{Snapshot: snap})
	})
	chat.OnChange(func(snap ChatSnapshot) {
		s.push(eventbus.ChatUpdateEvent{Messages: snap.Messages, Pending: snap.Pending})
	})

	return s
}

// OnUploaded registers a hook run after each successful upload, before the
// UI is told. Set it before Start.
func (s *Service) OnUploaded(fn func()) {
	s.uploaded = fn
}

// Start runs the core logic in a goroutine
func (s *Service) Start() {
	s.pushUploads()
	s.push(eventbus.ChartsUpdateEvent{Snapshot: s.charts.Snapshot()})
	s.push(eventbus.ChatUpdateEvent{Messages: s.chat.Messages(), Pending: s.chat.Pending()})
	go s.eventLoop()
}

func (s *Service) Stop() {
	s.cancel()
}

func (s *Service) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

// handleUIEvent applies cheap events inline and runs network-bound ones in
// their own goroutine so a slow request never blocks the loop.
func (s *Service) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.AddFilesEvent:
		added := s.uploads.AddFiles(e.Paths...)
		logging.Debug("files queued", "count", len(added))
		s.pushUploads()
	case eventbus.RemoveUploadEvent:
		if err := s.uploads.Remove(e.Index); err != nil {
			s.notice(err.Error())
			return
		}
		s.pushUploads()
	case eventbus.UploadEvent:
		go func() {
			if err := s.uploads.Upload(s.ctx, e.ID); err != nil && !isRequestError(err) {
				s.notice(err.Error())
			}
		}()
	case eventbus.UploadAllEvent:
		go func() { _ = s.uploads.UploadAll(s.ctx) }()
	case eventbus.RefreshChartsEvent:
		go func() { _ = s.charts.Load(s.ctx) }()
	case eventbus.SendMessageEvent:
		go func() { _ = s.chat.Send(s.ctx, e.Message) }()
	case eventbus.SendPresetEvent:
		go func() {
			if err := s.chat.SendPreset(s.ctx, e.Index); err != nil && !isRequestError(err) {
				s.notice(err.Error())
			}
		}()
	case eventbus.PingEvent:
		go s.ping()
	}
}

func (s *Service) ping() {
	state := models.ConnectionState{Checked: true}
	resp, err := s.prober.Test(s.ctx)
	if err != nil {
		state.Message = fmt.Sprintf("Erro na conexão: %s", api.Message(err))
	} else {
		state.OK = true
		state.Message = fmt.Sprintf("Conexão OK: %s", resp.Message)
	}
	s.push(eventbus.ConnectionEvent{State: state})
}

func (s *Service) pushUploads() {
	s.push(eventbus.UploadsUpdateEvent{Items: s.uploads.Items()})
}

func (s *Service) notice(text string) {
	s.push(eventbus.NoticeEvent{Text: text})
}

func (s *Service) push(event eventbus.CoreEvent) {
	if err := s.eventBus.SendToUI(event); err != nil {
		logging.Warn("failed to send state to UI", "err", err)
	}
}

// isRequestError reports whether err already surfaced as controller state.
// Precondition failures leave state untouched and need a notice instead.
func isRequestError(err error) bool {
	return !errors.Is(err, ErrInvalidFile) && !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrNotFound)
}
