// Package telemetry provides simulation statistics, event logging, and CSV output.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/world"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSourceAdded EventType = iota
	EventSourceEvicted
	EventBehaviorChanged
	EventReset
)

var eventNames = [...]string{
	EventSourceAdded:     "source_added",
	EventSourceEvicted:   "source_evicted",
	EventBehaviorChanged: "behavior_changed",
	EventReset:           "reset",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single world mutation.
type Event struct {
	Type EventType
	Tick int64

	// Optional fields depending on event type
	Source   world.Source        // source events
	Behavior components.Behavior // behavior change
	Vehicles int                 // behavior change
}

// EventLog observes a world, logging every mutation with slog and counting
// it in a Collector. The collector may be nil.
type EventLog struct {
	logger    *slog.Logger
	collector *Collector
	tick      func() int64
	last      Event
	count     int
}

// NewEventLog creates an event log. tick reports the current simulation tick.
func NewEventLog(logger *slog.Logger, collector *Collector, tick func() int64) *EventLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLog{logger: logger, collector: collector, tick: tick}
}

// SourceAdded implements world.Observer.
func (l *EventLog) SourceAdded(s world.Source) {
	l.record(Event{Type: EventSourceAdded, Source: s})
	if l.collector != nil {
		l.collector.RecordSourceAdded()
	}
}

// SourceEvicted implements world.Observer.
func (l *EventLog) SourceEvicted(s world.Source) {
	l.record(Event{Type: EventSourceEvicted, Source: s})
	if l.collector != nil {
		l.collector.RecordSourceEvicted()
	}
}

// BehaviorChanged implements world.Observer.
func (l *EventLog) BehaviorChanged(b components.Behavior, vehicles int) {
	l.record(Event{Type: EventBehaviorChanged, Behavior: b, Vehicles: vehicles})
	if l.collector != nil {
		l.collector.RecordBehaviorChange()
	}
}

// Reset implements world.Observer.
func (l *EventLog) Reset() {
	l.record(Event{Type: EventReset})
	if l.collector != nil {
		l.collector.RecordReset()
	}
}

// Last returns the most recent event and whether any has been seen.
func (l *EventLog) Last() (Event, bool) {
	return l.last, l.count > 0
}

// Count returns the number of events seen.
func (l *EventLog) Count() int {
	return l.count
}

func (l *EventLog) record(e Event) {
	if l.tick != nil {
		e.Tick = l.tick()
	}
	l.last = e
	l.count++

	switch e.Type {
	case EventSourceAdded, EventSourceEvicted:
		l.logger.Info(e.Type.String(),
			"tick", e.Tick,
			"seq", e.Source.Seq,
			"x", e.Source.X,
			"y", e.Source.Y,
		)
	case EventBehaviorChanged:
		l.logger.Info(e.Type.String(),
			"tick", e.Tick,
			"behavior", e.Behavior.String(),
			"vehicles", e.Vehicles,
		)
	default:
		l.logger.Info(e.Type.String(), "tick", e.Tick)
	}
}
