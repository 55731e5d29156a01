package cell

import "fmt"

// MaxOxygen caps a blood cell's oxygen level.
const MaxOxygen = 100

// BloodCell carries oxygen, and keeps carrying it across division.
type BloodCell struct {
	Cell
	oxygen int
}

// NewBlood creates a blood cell with the given oxygen level, clamped to [0, MaxOxygen].
func NewBlood(dna string, oxygen int, opts ...Option) *BloodCell {
	return &BloodCell{
		Cell:   newBase(KindBlood, dna, opts),
		oxygen: clamp(oxygen, 0, MaxOxygen),
	}
}

// Kind always reports KindBlood, including for a zero BloodCell.
func (b *BloodCell) Kind() Kind { return KindBlood }

// Oxygen returns the current oxygen level.
func (b *BloodCell) Oxygen() int { return b.oxygen }

// CarryOxygen raises the oxygen level by amount, capped at MaxOxygen.
// Negative amounts never take the level below 0.
func (b *BloodCell) CarryOxygen(amount int) {
	b.oxygen = clamp(b.oxygen+amount, 0, MaxOxygen)
}

// Clone divides the blood cell. The child inherits the parent's oxygen level
// as it stands at division time; vitality resets as for any cell.
func (b *BloodCell) Clone() (Entity, error) {
	oxygen := b.oxygen
	return b.divide(KindBlood, func(c Cell) Entity {
		return &BloodCell{Cell: c, oxygen: oxygen}
	})
}

// Describe renders the cell summary with its oxygen level.
func (b *BloodCell) Describe() string {
	return fmt.Sprintf("%s, O2=%d/%d", b.Cell.Describe(), b.oxygen, MaxOxygen)
}

var _ OxygenCarrier = (*BloodCell)(nil)
