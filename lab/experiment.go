package lab

import (
	"strings"

	"github.com/pthm-cable/mitosis/cell"
)

// Lessons and doses applied to parents during the scripted experiment.
const (
	experimentFact   = "I can divide myself!"
	experimentOxygen = 30
)

// Experiment runs the scripted demonstration: one cell from each built-in
// template, two growth steps and a division per cell, then a summary.
func (c *Console) Experiment() {
	c.header("Starting Biology Lab Experiment")
	c.println("Creating initial cells from templates...")
	for _, name := range []string{"basic", "blood", "brain"} {
		if _, err := c.lab.Create(name); err != nil {
			c.fail("%v", err)
		}
	}
	c.println("\nInitial cells created:")
	for _, r := range c.lab.Cells() {
		c.println("  " + r.Description)
	}

	c.header("Simulating cell growth and division")
	for _, r := range c.lab.Cells() {
		for i := 0; i < 2; i++ {
			if _, _, err := c.lab.Grow(r.Index); err != nil {
				c.fail("%v", err)
			}
		}

		if _, _, err := c.lab.Divide(r.Index, false); err != nil {
			c.fail("%v", err)
			continue
		}
		var err error
		switch r.Kind {
		case cell.KindBlood:
			_, err = c.lab.GiveOxygen(r.Index, experimentOxygen)
		case cell.KindBrain:
			_, err = c.lab.Teach(r.Index, experimentFact)
		}
		if err != nil {
			c.fail("%v", err)
		}
	}

	c.printf("\nAfter division - Total cells: %d\n", c.lab.Len())
	for _, r := range c.lab.Cells() {
		c.println("  " + r.Description)
	}

	c.header("Experiment Results")
	c.printf("Total cells: %d\n", c.lab.Len())
	for _, kind := range cell.Kinds {
		c.printf("- %s cells: %d\n", kindTitle(kind), len(c.lab.ByKind(kind)))
	}
	if brains := c.lab.ByKind(cell.KindBrain); len(brains) > 0 {
		c.printf("\nBrain cell knowledge: %s\n", strings.Join(brains[0].Knowledge, ", "))
	}
}
