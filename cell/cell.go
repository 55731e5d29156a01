// Package cell models self-replicating cells: a base cell with an
// energy-gated division, two variants that carry extra state into their
// offspring, and a registry of named templates that produces new cells by
// dividing a live seed.
package cell

import "fmt"

const (
	MaxEnergy       = 100 // Energy ceiling for every kind
	GrowthEnergy    = 20  // Energy gained per Grow
	OffspringEnergy = 80  // Energy every newly divided cell starts with
	DefaultEnergy   = 100 // Energy of a directly constructed cell
)

// Divisible is implemented by anything that can divide into a new Entity.
type Divisible interface {
	Clone() (Entity, error)
}

// Entity is a cell of any kind. The set of implementations is closed:
// *Cell, *BloodCell and *BrainCell.
type Entity interface {
	Divisible
	ID() string
	Kind() Kind
	DNA() string
	Energy() int
	Age() int
	Grow()
	Describe() string

	fill(s *Snapshot)
}

// Cell is the base replicating unit.
type Cell struct {
	id     string
	kind   Kind
	dna    string
	energy int
	age    int
	ids    IDSource
}

// Option configures a directly constructed cell.
type Option func(*settings)

type settings struct {
	energy int
	age    int
	ids    IDSource
}

// WithEnergy sets the starting energy, clamped to [0, MaxEnergy].
func WithEnergy(n int) Option {
	return func(s *settings) { s.energy = clamp(n, 0, MaxEnergy) }
}

// WithAge sets the starting age. Negative ages become 0.
func WithAge(n int) Option {
	return func(s *settings) { s.age = max(n, 0) }
}

// WithIDSource selects where the cell and its offspring get identifiers.
func WithIDSource(src IDSource) Option {
	return func(s *settings) {
		if src != nil {
			s.ids = src
		}
	}
}

func newBase(kind Kind, dna string, opts []Option) Cell {
	s := settings{energy: DefaultEnergy, ids: defaultIDs}
	for _, opt := range opts {
		opt(&s)
	}
	if s.ids == nil {
		s.ids = defaultIDs
	}
	return Cell{
		id:     s.ids.NewID(),
		kind:   kind,
		dna:    dna,
		energy: s.energy,
		age:    s.age,
		ids:    s.ids,
	}
}

// New creates a basic cell. Energy defaults to DefaultEnergy, age to 0.
func New(dna string, opts ...Option) *Cell {
	c := newBase(KindBasic, dna, opts)
	return &c
}

func (c *Cell) ID() string { return c.id }
func (c *Cell) Kind() Kind { return c.kind }
func (c *Cell) DNA() string { return c.dna }
func (c *Cell) Energy() int { return c.energy }
func (c *Cell) Age() int { return c.age }

// Grow adds GrowthEnergy (capped at MaxEnergy) and ages the cell by one.
func (c *Cell) Grow() {
	c.energy = min(MaxEnergy, c.energy+GrowthEnergy)
	c.age++
}

// Clone divides the cell. The parent pays its kind's cost and ages by one;
// the child shares the DNA and starts at OffspringEnergy with age 0.
// Below threshold nothing changes and an *EnergyError is returned.
func (c *Cell) Clone() (Entity, error) {
	return c.divide(c.kind, func(b Cell) Entity { return &b })
}

// divide applies kind's division gate and cost, building the child with spawn.
// The child's id is drawn before the parent is touched.
func (c *Cell) divide(kind Kind, spawn func(Cell) Entity) (Entity, error) {
	rules := RulesFor(kind)
	if c.energy < rules.Threshold {
		return nil, &EnergyError{ID: c.id, Kind: kind, Energy: c.energy, Threshold: rules.Threshold}
	}
	ids := c.idSource()
	offspring := Cell{
		id:     ids.NewID(),
		kind:   kind,
		dna:    c.dna,
		energy: OffspringEnergy,
		ids:    ids,
	}
	child := spawn(offspring)
	c.energy -= rules.Cost
	c.age++
	return child, nil
}

// Describe renders identity and vitality for display.
func (c *Cell) Describe() string {
	return fmt.Sprintf("Cell %s: DNA=%s, Energy=%d, Age=%d", c.id, c.dna, c.energy, c.age)
}

// idSource returns the cell's identifier source. Zero-value cells use the default.
func (c *Cell) idSource() IDSource {
	if c.ids == nil {
		return defaultIDs
	}
	return c.ids
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Learner is implemented by cells that accumulate knowledge.
type Learner interface {
	Learn(fact string)
	Knowledge() []string
}

// OxygenCarrier is implemented by cells that carry oxygen.
type OxygenCarrier interface {
	CarryOxygen(amount int)
	Oxygen() int
}
