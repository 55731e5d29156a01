package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/mitosis/cell"
)

// KindStats summarizes the vitality of every cell of one kind.
type KindStats struct {
	Kind       string  `csv:"kind"`
	Count      int     `csv:"count"`
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyMin  float64 `csv:"energy_min"`
	EnergyMax  float64 `csv:"energy_max"`
	AgeMean    float64 `csv:"age_mean"`
	AgeMax     float64 `csv:"age_max"`
}

// Report summarizes a population.
type Report struct {
	Total int
	Kinds []KindStats // One entry per cell.Kinds, in that order
}

// ByKind returns the stats for kind.
func (r Report) ByKind(kind cell.Kind) KindStats {
	for _, ks := range r.Kinds {
		if ks.Kind == kind.String() {
			return ks
		}
	}
	return KindStats{Kind: kind.String()}
}

// Summarize computes per-kind statistics for a population.
func Summarize(population []cell.Snapshot) Report {
	energy := make(map[cell.Kind][]float64)
	age := make(map[cell.Kind][]float64)
	for _, s := range population {
		energy[s.Kind] = append(energy[s.Kind], float64(s.Energy))
		age[s.Kind] = append(age[s.Kind], float64(s.Age))
	}

	report := Report{Total: len(population)}
	for _, kind := range cell.Kinds {
		report.Kinds = append(report.Kinds, summarizeKind(kind, energy[kind], age[kind]))
	}
	return report
}

func summarizeKind(kind cell.Kind, energy, age []float64) KindStats {
	ks := KindStats{Kind: kind.String(), Count: len(energy)}
	if len(energy) == 0 {
		return ks
	}

	ks.EnergyMean, ks.EnergyStd = stat.MeanStdDev(energy, nil)
	if len(energy) < 2 || math.IsNaN(ks.EnergyStd) {
		ks.EnergyStd = 0
	}
	ks.EnergyMin = floats.Min(energy)
	ks.EnergyMax = floats.Max(energy)
	ks.AgeMean = stat.Mean(age, nil)
	ks.AgeMax = floats.Max(age)
	return ks
}
