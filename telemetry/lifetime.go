package telemetry

import "sort"

// LifetimeStats tracks per-cell statistics over its lifetime in the lab.
type LifetimeStats struct {
	CellID          string
	BornSeq         int    // Journal sequence of the event that created the cell
	ParentID        string // Empty for cells drawn from a template
	Children        int
	FailedDivisions int
	Grows           int
}

// LifetimeTracker manages per-cell lifetime statistics.
type LifetimeTracker struct {
	stats map[string]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[string]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new cell.
func (lt *LifetimeTracker) Register(cellID string, bornSeq int, parentID string) {
	lt.stats[cellID] = &LifetimeStats{
		CellID:   cellID,
		BornSeq:  bornSeq,
		ParentID: parentID,
	}
}

// Get returns the lifetime stats for a cell, or nil if not found.
func (lt *LifetimeTracker) Get(cellID string) *LifetimeStats {
	return lt.stats[cellID]
}

// RecordChild increments children count.
func (lt *LifetimeTracker) RecordChild(parentID string) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// RecordFailedDivision increments the refused division count.
func (lt *LifetimeTracker) RecordFailedDivision(cellID string) {
	if s := lt.stats[cellID]; s != nil {
		s.FailedDivisions++
	}
}

// RecordGrow increments the growth count.
func (lt *LifetimeTracker) RecordGrow(cellID string) {
	if s := lt.stats[cellID]; s != nil {
		s.Grows++
	}
}

// MostProlific returns the cell with the most children, earliest born on ties.
// ok is false when no tracked cell has divided.
func (lt *LifetimeTracker) MostProlific() (best LifetimeStats, ok bool) {
	all := make([]*LifetimeStats, 0, len(lt.stats))
	for _, s := range lt.stats {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Children != all[j].Children {
			return all[i].Children > all[j].Children
		}
		return all[i].BornSeq < all[j].BornSeq
	})
	if len(all) == 0 || all[0].Children == 0 {
		return LifetimeStats{}, false
	}
	return *all[0], true
}

// Count returns the number of tracked cells.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
