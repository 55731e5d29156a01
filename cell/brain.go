package cell

import (
	"fmt"
	"slices"
	"strings"
)

// BrainCell accumulates knowledge and passes a copy of it to its offspring.
type BrainCell struct {
	Cell
	knowledge []string
}

// NewBrain creates a brain cell seeded with a copy of knowledge.
func NewBrain(dna string, knowledge []string, opts ...Option) *BrainCell {
	return &BrainCell{
		Cell:      newBase(KindBrain, dna, opts),
		knowledge: slices.Clone(knowledge),
	}
}

// Kind always reports KindBrain, including for a zero BrainCell.
func (b *BrainCell) Kind() Kind { return KindBrain }

// Learn appends a fact. Order is kept and duplicates are allowed.
func (b *BrainCell) Learn(fact string) {
	b.knowledge = append(b.knowledge, fact)
}

// Knowledge returns a copy of everything the cell has learned, oldest first.
func (b *BrainCell) Knowledge() []string {
	return slices.Clone(b.knowledge)
}

// Clone divides the brain cell. Division is costlier than for other kinds;
// the child gets an independent copy of the parent's current knowledge.
func (b *BrainCell) Clone() (Entity, error) {
	return b.divide(KindBrain, func(c Cell) Entity {
		return &BrainCell{Cell: c, knowledge: slices.Clone(b.knowledge)}
	})
}

// Describe renders the cell summary with its knowledge.
func (b *BrainCell) Describe() string {
	return fmt.Sprintf("%s, Knowledge=[%s]", b.Cell.Describe(), strings.Join(b.knowledge, ", "))
}

var _ Learner = (*BrainCell)(nil)
