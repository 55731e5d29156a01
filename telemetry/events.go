// Package telemetry provides the lab's event journal, per-cell lifetime
// tracking and population statistics.
package telemetry

import (
	"strconv"

	"github.com/pthm-cable/mitosis/cell"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventCreate EventType = iota
	EventDivide
	EventDivideFailed
	EventGrow
	EventLearn
	EventOxygen
	EventRegister
)

var eventNames = [...]string{
	EventCreate:       "create",
	EventDivide:       "divide",
	EventDivideFailed: "divide_failed",
	EventGrow:         "grow",
	EventLearn:        "learn",
	EventOxygen:       "oxygen",
	EventRegister:     "register",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// MarshalCSV writes the event name into CSV output.
func (t EventType) MarshalCSV() (string, error) {
	return t.String(), nil
}

// Event represents a single journal entry. Energy and Age are the subject
// cell's values after the event.
type Event struct {
	Seq      int       `csv:"seq"`
	Type     EventType `csv:"event"`
	CellID   string    `csv:"cell_id"`
	Kind     string    `csv:"kind"`
	Template string    `csv:"template"`
	ParentID string    `csv:"parent_id"`
	Energy   int       `csv:"energy"`
	Age      int       `csv:"age"`
	Detail   string    `csv:"detail"`
}

func subject(t EventType, s cell.Snapshot) Event {
	return Event{
		Type:   t,
		CellID: s.ID,
		Kind:   s.Kind.String(),
		Energy: s.Energy,
		Age:    s.Age,
	}
}

// NewCreateEvent records a cell instantiated from a template.
func NewCreateEvent(child cell.Snapshot, template string) Event {
	ev := subject(EventCreate, child)
	ev.Template = template
	return ev
}

// NewDivideEvent records a successful division. The subject is the child.
func NewDivideEvent(child, parent cell.Snapshot) Event {
	ev := subject(EventDivide, child)
	ev.ParentID = parent.ID
	return ev
}

// NewDivideFailedEvent records a refused division.
func NewDivideFailedEvent(parent cell.Snapshot, reason error) Event {
	ev := subject(EventDivideFailed, parent)
	ev.Detail = reason.Error()
	return ev
}

// NewGrowEvent records a growth step.
func NewGrowEvent(s cell.Snapshot) Event {
	return subject(EventGrow, s)
}

// NewLearnEvent records a fact taught to a brain cell.
func NewLearnEvent(s cell.Snapshot, fact string) Event {
	ev := subject(EventLearn, s)
	ev.Detail = fact
	return ev
}

// NewOxygenEvent records an oxygen dose given to a blood cell.
func NewOxygenEvent(s cell.Snapshot, amount int) Event {
	ev := subject(EventOxygen, s)
	ev.Detail = strconv.Itoa(amount)
	return ev
}

// NewRegisterEvent records a template added or replaced.
func NewRegisterEvent(seed cell.Snapshot, template string) Event {
	ev := subject(EventRegister, seed)
	ev.Template = template
	return ev
}
