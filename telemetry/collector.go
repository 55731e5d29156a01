package telemetry

import "github.com/pthm-cable/mitosis/cell"

// KindCounts holds event counters for one kind.
type KindCounts struct {
	Created         int
	Divisions       int
	FailedDivisions int
	Grows           int
	Lessons         int
	OxygenDoses     int
}

// Collector accumulates event counts per kind for the session.
type Collector struct {
	counts   map[cell.Kind]*KindCounts
	seq      int
	lifetime *LifetimeTracker
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		counts:   make(map[cell.Kind]*KindCounts),
		lifetime: NewLifetimeTracker(),
	}
}

// Record counts ev and assigns its sequence number. The numbered event is returned.
func (c *Collector) Record(ev Event) Event {
	c.seq++
	ev.Seq = c.seq

	kind, err := cell.ParseKind(ev.Kind)
	if err != nil {
		return ev
	}
	k := c.counts[kind]
	if k == nil {
		k = &KindCounts{}
		c.counts[kind] = k
	}

	switch ev.Type {
	case EventCreate:
		k.Created++
		c.lifetime.Register(ev.CellID, ev.Seq, "")
	case EventDivide:
		k.Divisions++
		c.lifetime.Register(ev.CellID, ev.Seq, ev.ParentID)
		c.lifetime.RecordChild(ev.ParentID)
	case EventDivideFailed:
		k.FailedDivisions++
		c.lifetime.RecordFailedDivision(ev.CellID)
	case EventGrow:
		k.Grows++
		c.lifetime.RecordGrow(ev.CellID)
	case EventLearn:
		k.Lessons++
	case EventOxygen:
		k.OxygenDoses++
	}
	return ev
}

// Counts returns the counters for kind.
func (c *Collector) Counts(kind cell.Kind) KindCounts {
	if k := c.counts[kind]; k != nil {
		return *k
	}
	return KindCounts{}
}

// Events returns how many events have been recorded.
func (c *Collector) Events() int {
	return c.seq
}

// Lifetime returns the per-cell tracker fed by Record.
func (c *Collector) Lifetime() *LifetimeTracker {
	return c.lifetime
}
