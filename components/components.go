// Package components defines ECS components for the lab population.
package components

import "github.com/pthm-cable/mitosis/cell"

// Specimen holds a live cell kept in the lab.
type Specimen struct {
	Cell cell.Entity
}

// Lineage records where a specimen came from.
type Lineage struct {
	Seq        int    // Creation order within the lab, starting at 1
	Template   string // Template the line was drawn from
	ParentID   string // Empty for cells drawn from a template
	Generation int    // 0 for template draws, parent's generation + 1 for divisions
}
