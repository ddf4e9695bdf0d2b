package notification

import (
	"sync"

	"pms/services/logger"
)

// Outbox is the one-way queue that post-commit side effects hand their events
// to. A single worker fans each event out to every sink. Publish never blocks
// the caller: when the buffer is full the event is dropped and logged.
type Outbox struct {
	ch     chan Event
	sinks  []Sink
	logger logger.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewOutbox(buffer int, l logger.Logger, sinks ...Sink) *Outbox {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	o := &Outbox{
		ch:     make(chan Event, buffer),
		sinks:  sinks,
		logger: l,
		done:   make(chan struct{}),
	}
	go o.run()
	return o
}

func (o *Outbox) run() {
	defer close(o.done)
	for event := range o.ch {
		for _, sink := range o.sinks {
			if err := sink.Dispatch(event); err != nil {
				o.logger.Error("[NOTIFICATION_ERROR] dispatch %s (%s) failed: %v", event.Type, event.ID, err)
			}
		}
	}
}

// Publish enqueues an event for delivery.
func (o *Outbox) Publish(event Event) {
	select {
	case o.ch <- event:
	default:
		o.logger.Error("[NOTIFICATION_ERROR] outbox full, dropping event %s (%s)", event.Type, event.ID)
	}
}

// Close stops accepting events and waits for the worker to drain the buffer.
func (o *Outbox) Close() {
	o.closeOnce.Do(func() {
		close(o.ch)
		<-o.done
	})
}
