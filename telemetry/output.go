package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/mitosis/cell"
	"github.com/pthm-cable/mitosis/config"
)

// PopulationRow is one cell in population.csv.
type PopulationRow struct {
	Seq        int    `csv:"seq"`
	ID         string `csv:"id"`
	Kind       string `csv:"kind"`
	Template   string `csv:"template"`
	ParentID   string `csv:"parent_id"`
	Generation int    `csv:"generation"`
	DNA        string `csv:"dna"`
	Energy     int    `csv:"energy"`
	Age        int    `csv:"age"`
	Oxygen     int    `csv:"oxygen"`
	Knowledge  string `csv:"knowledge"` // Facts joined with "; "
}

// NewPopulationRow flattens a snapshot with its lineage.
func NewPopulationRow(seq int, s cell.Snapshot, template, parentID string, generation int) PopulationRow {
	return PopulationRow{
		Seq:        seq,
		ID:         s.ID,
		Kind:       s.Kind.String(),
		Template:   template,
		ParentID:   parentID,
		Generation: generation,
		DNA:        s.DNA,
		Energy:     s.Energy,
		Age:        s.Age,
		Oxygen:     s.Oxygen,
		Knowledge:  strings.Join(s.Knowledge, "; "),
	}
}

// OutputManager handles the session journal with CSV logging.
// A nil *OutputManager is valid and writes nothing.
type OutputManager struct {
	dir       string
	eventFile *os.File

	// Track if headers have been written
	eventHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating events.csv: %w", err)
	}
	return &OutputManager{dir: dir, eventFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvent appends an event to events.csv.
func (om *OutputManager) WriteEvent(ev Event) error {
	if om == nil {
		return nil
	}

	records := []Event{ev}

	if !om.eventHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
		om.eventHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	return nil
}

// WritePopulation replaces population.csv with rows.
func (om *OutputManager) WritePopulation(rows []PopulationRow) error {
	if om == nil {
		return nil
	}
	return om.writeTable("population.csv", rows)
}

// WriteSummary replaces summary.csv with the per-kind statistics of r.
func (om *OutputManager) WriteSummary(r Report) error {
	if om == nil {
		return nil
	}
	return om.writeTable("summary.csv", r.Kinds)
}

func (om *OutputManager) writeTable(name string, rows interface{}) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

// Close closes the event journal.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.eventFile.Close()
}
