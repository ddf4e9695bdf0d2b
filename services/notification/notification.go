package notification

import (
	"fmt"
	"time"

	"pms/services/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"
)

// Event is one outbound notification. Events are fire-and-forget: delivery is
// never awaited for correctness of a booking result.
type Event struct {
	ID        string      `json:"id"`
	TenantID  uint        `json:"tenantId"`
	Type      string      `json:"type"`
	Recipient string      `json:"recipient,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(tenantID uint, eventType, recipient string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Type:      eventType,
		Recipient: recipient,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// Sink delivers events to one outbound channel (websocket, email gateway,
// webhook...).
type Sink interface {
	Dispatch(event Event) error
}

// MelodySink broadcasts events to connected front-desk dashboards.
type MelodySink struct {
	m *melody.Melody
}

func NewMelodySink(m *melody.Melody) *MelodySink {
	return &MelodySink{m: m}
}

func (s *MelodySink) Dispatch(event Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(b)
}

// LogSink writes events to the service log. It stands in for the external
// email/webhook gateway in environments that have none configured.
type LogSink struct {
	logger logger.Logger
}

func NewLogSink(l logger.Logger) *LogSink {
	return &LogSink{logger: l}
}

func (s *LogSink) Dispatch(event Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.logger.Info("notification %s: %s", event.Type, string(b))
	return nil
}
