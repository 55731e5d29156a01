package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/mitosis/cell"
)

func TestSummarize(t *testing.T) {
	population := []cell.Snapshot{
		{Kind: cell.KindBasic, Energy: 80, Age: 0},
		{Kind: cell.KindBasic, Energy: 40, Age: 4},
		{Kind: cell.KindBlood, Energy: 70, Age: 2},
	}

	r := Summarize(population)
	if r.Total != 3 {
		t.Errorf("Total = %d, want 3", r.Total)
	}
	if len(r.Kinds) != len(cell.Kinds) {
		t.Fatalf("got %d kinds, want %d", len(r.Kinds), len(cell.Kinds))
	}

	basic := r.ByKind(cell.KindBasic)
	if basic.Count != 2 || basic.EnergyMean != 60 || basic.EnergyMin != 40 || basic.EnergyMax != 80 {
		t.Errorf("basic = %+v", basic)
	}
	// Sample standard deviation of {80, 40}.
	if math.Abs(basic.EnergyStd-28.284) > 0.001 {
		t.Errorf("basic energy std = %v", basic.EnergyStd)
	}
	if basic.AgeMean != 2 || basic.AgeMax != 4 {
		t.Errorf("basic ages = %v / %v", basic.AgeMean, basic.AgeMax)
	}

	blood := r.ByKind(cell.KindBlood)
	if blood.Count != 1 || blood.EnergyStd != 0 || blood.EnergyMean != 70 {
		t.Errorf("blood = %+v", blood)
	}

	brain := r.ByKind(cell.KindBrain)
	if brain.Count != 0 || brain.EnergyMean != 0 {
		t.Errorf("brain = %+v", brain)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(nil)
	if r.Total != 0 {
		t.Errorf("Total = %d", r.Total)
	}
	for _, ks := range r.Kinds {
		if ks.Count != 0 || ks.EnergyMax != 0 {
			t.Errorf("%s = %+v, want zero", ks.Kind, ks)
		}
	}
}
