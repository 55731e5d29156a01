package cell

// Snapshot is a read-only copy of an entity's state.
type Snapshot struct {
	ID        string
	Kind      Kind
	DNA       string
	Energy    int
	Age       int
	Oxygen    int      // Blood cells only
	Knowledge []string // Brain cells only, copied
}

// Snap captures the current state of e.
func Snap(e Entity) Snapshot {
	var s Snapshot
	e.fill(&s)
	return s
}

func (c *Cell) fill(s *Snapshot) {
	s.ID = c.id
	s.Kind = c.kind
	s.DNA = c.dna
	s.Energy = c.energy
	s.Age = c.age
}

func (b *BloodCell) fill(s *Snapshot) {
	b.Cell.fill(s)
	s.Kind = KindBlood
	s.Oxygen = b.oxygen
}

func (b *BrainCell) fill(s *Snapshot) {
	b.Cell.fill(s)
	s.Kind = KindBrain
	s.Knowledge = b.Knowledge()
}
