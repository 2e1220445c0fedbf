package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/analisai/analisai/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// AddFilesEvent - UI selected files for the upload queue
type AddFilesEvent struct {
	Paths []string
}

// UploadEvent - UI starts the upload of one queued item
type UploadEvent struct {
	ID string
}

// UploadAllEvent - UI starts every idle item at once
type UploadAllEvent struct{}

// RemoveUploadEvent - UI dismisses the item at Index
type RemoveUploadEvent struct {
	Index int
}

// RefreshChartsEvent - UI asks for a fresh aggregation load
type RefreshChartsEvent struct{}

// SendMessageEvent - UI requests core to send a chat message
type SendMessageEvent struct {
	Message string
}

// SendPresetEvent - UI picked one of the analysis prompt templates
type SendPresetEvent struct {
	Index int
}

// PingEvent - UI asks for a backend connection probe
type PingEvent struct{}

func (e AddFilesEvent) UIEvent()      {}
func (e UploadEvent) UIEvent()        {}
func (e UploadAllEvent) UIEvent()     {}
func (e RemoveUploadEvent) UIEvent()  {}
func (e RefreshChartsEvent) UIEvent() {}
func (e SendMessageEvent) UIEvent()   {}
func (e SendPresetEvent) UIEvent()    {}
func (e PingEvent) UIEvent()          {}

// UploadsUpdateEvent - Core pushes the upload queue
type UploadsUpdateEvent struct {
	Items []models.UploadItem
}

// UploadSucceededEvent - an upload completed; the UI moves on to the charts
type UploadSucceededEvent struct {
	Item     models.UploadItem
	Filename string
}

// ChartsUpdateEvent - Core pushes chart state
type ChartsUpdateEvent struct {
	Snapshot models.ChartSnapshot
}

// ChatUpdateEvent - Core pushes the transcript
type ChatUpdateEvent struct {
	Messages []models.ChatMessage
	Pending  bool
}

// ConnectionEvent - result of a backend probe
type ConnectionEvent struct {
	State models.ConnectionState
}

// NoticeEvent - short status-bar message
type NoticeEvent struct {
	Text string
}

func (e UploadsUpdateEvent) CoreEvent()   {}
func (e UploadSucceededEvent) CoreEvent() {}
func (e ChartsUpdateEvent) CoreEvent()    {}
func (e ChatUpdateEvent) CoreEvent()      {}
func (e ConnectionEvent) CoreEvent()      {}
func (e NoticeEvent) CoreEvent()          {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrBusClosed   = errors.New("event bus is closed")
)

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen {
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	mu             sync.RWMutex
	closed         bool
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, 100),
		coreToUI:       make(chan CoreEvent, 100),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return ErrBusClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToCore", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("UI to Core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return ErrBusClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToUI", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("Core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

// reportError expects the caller to hold the read lock.
func (eb *EventBus) reportError(operation string, err error) {
	eb.circuitBreaker.RecordFailure()
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

// Close closes both channels. Sends after Close return ErrBusClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
