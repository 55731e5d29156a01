package telemetry

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/mitosis/cell"
	"github.com/pthm-cable/mitosis/config"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	// All methods are no-ops on nil.
	if err := om.WriteEvent(Event{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePopulation(nil); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesJournal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	parent := cell.Snapshot{ID: "p", Kind: cell.KindBrain, Energy: 60, Age: 1}
	child := cell.Snapshot{ID: "c", Kind: cell.KindBrain, Energy: 80, Knowledge: []string{"a", "b"}}
	c := NewCollector()
	for _, ev := range []Event{NewCreateEvent(parent, "brain"), NewDivideEvent(child, parent)} {
		if err := om.WriteEvent(c.Record(ev)); err != nil {
			t.Fatalf("WriteEvent: %v", err)
		}
	}

	if err := om.WritePopulation([]PopulationRow{
		NewPopulationRow(1, parent, "brain", "", 0),
		NewPopulationRow(2, child, "brain", "p", 1),
	}); err != nil {
		t.Fatalf("WritePopulation: %v", err)
	}
	if err := om.WriteSummary(Summarize([]cell.Snapshot{parent, child})); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	events := readCSV(t, filepath.Join(dir, "events.csv"))
	if len(events) != 3 {
		t.Fatalf("events.csv has %d rows, want header + 2", len(events))
	}
	if events[0][0] != "seq" || events[1][1] != "create" || events[2][1] != "divide" || events[2][5] != "p" {
		t.Errorf("events.csv = %q", events)
	}

	population := readCSV(t, filepath.Join(dir, "population.csv"))
	if len(population) != 3 || population[2][10] != "a; b" {
		t.Errorf("population.csv = %q", population)
	}

	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	if len(summary) != 1+len(cell.Kinds) {
		t.Errorf("summary.csv = %q", summary)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
