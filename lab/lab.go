// Package lab runs a cell division session: it draws cells from the template
// registry, keeps the resulting population, and drives growth, division and
// the variant-specific actions against it.
package lab

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pthm-cable/mitosis/cell"
	"github.com/pthm-cable/mitosis/config"
	"github.com/pthm-cable/mitosis/telemetry"
)

var (
	ErrNoSuchCell     = errors.New("no such cell")
	ErrWrongKind      = errors.New("cell cannot do that")
	ErrBlankFact      = errors.New("fact is blank")
	ErrDoseOutOfRange = errors.New("oxygen dose out of range")
	ErrBlankName      = errors.New("template name is blank")
)

// Dose bounds used when Options leaves both at zero.
const (
	defaultMinDose = 1
	defaultMaxDose = 50
)

// TemplateSpec describes a template seed to register.
type TemplateSpec struct {
	Name      string
	Kind      cell.Kind
	DNA       string
	Energy    int // 0 = cell.DefaultEnergy
	Oxygen    int
	Knowledge []string
}

func (s TemplateSpec) build(ids cell.IDSource) cell.Entity {
	opts := []cell.Option{cell.WithIDSource(ids)}
	if s.Energy != 0 {
		opts = append(opts, cell.WithEnergy(s.Energy))
	}
	switch s.Kind {
	case cell.KindBlood:
		return cell.NewBlood(s.DNA, s.Oxygen, opts...)
	case cell.KindBrain:
		return cell.NewBrain(s.DNA, s.Knowledge, opts...)
	default:
		return cell.New(s.DNA, opts...)
	}
}

// Options configures a Lab.
type Options struct {
	IDs        cell.IDSource // nil = cell.DefaultIDs()
	GrowPasses int           // Grows given to a weak cell helped before dividing (0 = none)
	MinDose    int
	MaxDose    int
	Templates  []TemplateSpec // Registered on top of the built-in seeds
	Output     *telemetry.OutputManager
	Logger     *slog.Logger // nil = discard
}

// OptionsFromConfig builds lab options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		GrowPasses: cfg.Lab.GrowPasses,
		MinDose:    cfg.Oxygen.MinDose,
		MaxDose:    cfg.Oxygen.MaxDose,
	}
	if cfg.Lab.Seed != 0 {
		opts.IDs = cell.SeededIDs(cfg.Lab.Seed)
	}
	for i, t := range cfg.Templates {
		opts.Templates = append(opts.Templates, TemplateSpec{
			Name:      t.Name,
			Kind:      cfg.Derived.TemplateKinds[i],
			DNA:       t.DNA,
			Energy:    t.Energy,
			Oxygen:    t.Oxygen,
			Knowledge: t.Knowledge,
		})
	}
	return opts
}

// Record is a view of one cell in the lab.
type Record struct {
	cell.Snapshot
	Description string // The cell's own Describe() output
	Index       int    // Position in Cells(), starting at 0
	Template    string
	ParentID    string
	Generation  int
}

// Lab owns the template registry and the population drawn from it.
// A Lab is not safe for concurrent use.
type Lab struct {
	opts      Options
	registry  *cell.Registry
	pop       *population
	collector *telemetry.Collector
	detector  *telemetry.BookmarkDetector
	bookmarks []telemetry.Bookmark
	output    *telemetry.OutputManager
	logger    *slog.Logger
}

// New creates a lab with the built-in templates plus opts.Templates.
func New(opts Options) *Lab {
	if opts.IDs == nil {
		opts.IDs = cell.DefaultIDs()
	}
	if opts.MaxDose == 0 && opts.MinDose == 0 {
		opts.MinDose, opts.MaxDose = defaultMinDose, defaultMaxDose
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	l := &Lab{
		opts:      opts,
		registry:  cell.NewRegistry(cell.WithIDSource(opts.IDs)),
		pop:       newPopulation(),
		collector: telemetry.NewCollector(),
		detector:  telemetry.NewBookmarkDetector(),
		output:    opts.Output,
		logger:    logger,
	}
	for _, spec := range opts.Templates {
		if _, err := l.AddTemplate(spec); err != nil {
			l.logger.Warn("skipping template", "name", spec.Name, "error", err)
		}
	}
	return l
}

// record numbers ev, counts it and appends it to the journal.
func (l *Lab) record(ev telemetry.Event) {
	ev = l.collector.Record(ev)
	for _, b := range l.detector.Check(ev) {
		b.LogBookmark(l.logger)
		l.bookmarks = append(l.bookmarks, b)
	}
	if err := l.output.WriteEvent(ev); err != nil {
		l.logger.Warn("journal write failed", "event", ev.Type.String(), "error", err)
	}
}

func (l *Lab) add(e cell.Entity, template, parentID string, generation int) Record {
	lin := l.pop.add(e, template, parentID, generation)
	return toRecord(lin.Seq-1, member{cell: e, lineage: lin})
}

func toRecord(index int, m member) Record {
	return Record{
		Snapshot:    cell.Snap(m.cell),
		Description: m.cell.Describe(),
		Index:       index,
		Template:    m.lineage.Template,
		ParentID:    m.lineage.ParentID,
		Generation:  m.lineage.Generation,
	}
}

func (l *Lab) member(index int) (member, error) {
	members := l.pop.members()
	if index < 0 || index >= len(members) {
		return member{}, fmt.Errorf("%w: #%d (lab holds %d)", ErrNoSuchCell, index+1, len(members))
	}
	return members[index], nil
}

// unknownTemplate decorates a registry miss with the closest template name.
func (l *Lab) unknownTemplate(name string, err error) error {
	if s, ok := closest(name, l.registry.Names()); ok {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

// Create draws a new cell from the named template.
func (l *Lab) Create(template string) (Record, error) {
	e, err := l.registry.Instantiate(template)
	if err != nil {
		if errors.Is(err, cell.ErrUnknownTemplate) {
			return Record{}, l.unknownTemplate(template, err)
		}
		if seed, ok := l.registry.Inspect(template); ok {
			ev := telemetry.NewDivideFailedEvent(seed, err)
			ev.Template = template
			l.record(ev)
		}
		l.logger.Warn("template exhausted", "template", template, "error", err)
		return Record{}, err
	}

	rec := l.add(e, template, "", 0)
	l.record(telemetry.NewCreateEvent(rec.Snapshot, template))
	l.logger.Debug("cell created", "template", template, "id", rec.ID)
	return rec, nil
}

// NeedsGrowth reports whether the cell at index is below its division threshold.
func (l *Lab) NeedsGrowth(index int) (bool, error) {
	m, err := l.member(index)
	if err != nil {
		return false, err
	}
	return m.cell.Energy() < cell.RulesFor(m.cell.Kind()).Threshold, nil
}

// Divide splits the cell at index. When growFirst is set and the cell is
// below its division threshold, it is grown GrowPasses times beforehand.
// On failure the returned parent record shows the cell as left.
func (l *Lab) Divide(index int, growFirst bool) (child, parent Record, err error) {
	m, err := l.member(index)
	if err != nil {
		return Record{}, Record{}, err
	}
	e := m.cell

	if growFirst && e.Energy() < cell.RulesFor(e.Kind()).Threshold {
		for i := 0; i < l.opts.GrowPasses; i++ {
			e.Grow()
			l.record(telemetry.NewGrowEvent(cell.Snap(e)))
		}
	}

	offspring, err := e.Clone()
	parent = toRecord(index, m)
	if err != nil {
		l.record(telemetry.NewDivideFailedEvent(parent.Snapshot, err))
		l.logger.Debug("division refused", "id", e.ID(), "error", err)
		return Record{}, parent, err
	}

	child = l.add(offspring, m.lineage.Template, e.ID(), m.lineage.Generation+1)
	l.record(telemetry.NewDivideEvent(child.Snapshot, parent.Snapshot))
	l.logger.Debug("cell divided", "parent", e.ID(), "child", child.ID)
	return child, parent, nil
}

// Grow grows the cell at index once.
func (l *Lab) Grow(index int) (before, after Record, err error) {
	m, err := l.member(index)
	if err != nil {
		return Record{}, Record{}, err
	}
	before = toRecord(index, m)
	m.cell.Grow()
	after = toRecord(index, m)
	l.record(telemetry.NewGrowEvent(after.Snapshot))
	return before, after, nil
}

// Teach adds a fact to the brain cell at index. Blank facts are rejected.
func (l *Lab) Teach(index int, fact string) (Record, error) {
	if strings.TrimSpace(fact) == "" {
		return Record{}, ErrBlankFact
	}
	m, err := l.member(index)
	if err != nil {
		return Record{}, err
	}
	learner, ok := m.cell.(cell.Learner)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s cell cannot learn", ErrWrongKind, m.cell.Kind())
	}
	learner.Learn(fact)
	rec := toRecord(index, m)
	l.record(telemetry.NewLearnEvent(rec.Snapshot, fact))
	return rec, nil
}

// GiveOxygen gives an oxygen dose to the blood cell at index.
// The dose must lie within the configured bounds.
func (l *Lab) GiveOxygen(index, amount int) (Record, error) {
	if amount < l.opts.MinDose || amount > l.opts.MaxDose {
		return Record{}, fmt.Errorf("%w: %d not in %d-%d", ErrDoseOutOfRange, amount, l.opts.MinDose, l.opts.MaxDose)
	}
	m, err := l.member(index)
	if err != nil {
		return Record{}, err
	}
	carrier, ok := m.cell.(cell.OxygenCarrier)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s cell cannot carry oxygen", ErrWrongKind, m.cell.Kind())
	}
	carrier.CarryOxygen(amount)
	rec := toRecord(index, m)
	l.record(telemetry.NewOxygenEvent(rec.Snapshot, amount))
	return rec, nil
}

// DoseRange returns the accepted oxygen dose bounds.
func (l *Lab) DoseRange() (lo, hi int) {
	return l.opts.MinDose, l.opts.MaxDose
}

// Cells returns every cell in creation order.
func (l *Lab) Cells() []Record {
	members := l.pop.members()
	out := make([]Record, len(members))
	for i, m := range members {
		out[i] = toRecord(i, m)
	}
	return out
}

// ByKind returns the cells of one kind, in creation order. Record.Index still
// refers to the position in Cells().
func (l *Lab) ByKind(kind cell.Kind) []Record {
	var out []Record
	for _, r := range l.Cells() {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of cells in the lab.
func (l *Lab) Len() int {
	return l.pop.len()
}

// AddTemplate registers a new seed, replacing any template of the same name.
func (l *Lab) AddTemplate(spec TemplateSpec) (cell.Snapshot, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	if spec.Name == "" {
		return cell.Snapshot{}, ErrBlankName
	}
	seed := spec.build(l.opts.IDs)
	l.registry.Register(spec.Name, seed)
	snap := cell.Snap(seed)
	l.record(telemetry.NewRegisterEvent(snap, spec.Name))
	l.logger.Debug("template registered", "name", spec.Name, "kind", spec.Kind.String())
	return snap, nil
}

// Templates returns template names in registration order.
func (l *Lab) Templates() []string {
	return l.registry.Names()
}

// InspectTemplate returns the current state of a template seed.
func (l *Lab) InspectTemplate(name string) (cell.Snapshot, error) {
	snap, ok := l.registry.Inspect(name)
	if !ok {
		return cell.Snapshot{}, l.unknownTemplate(name, &cell.TemplateError{Name: name})
	}
	return snap, nil
}

// Report summarizes the current population.
func (l *Lab) Report() telemetry.Report {
	cells := l.Cells()
	snaps := make([]cell.Snapshot, len(cells))
	for i, r := range cells {
		snaps[i] = r.Snapshot
	}
	return telemetry.Summarize(snaps)
}

// Collector exposes the session's event counters.
func (l *Lab) Collector() *telemetry.Collector {
	return l.collector
}

// Bookmarks returns the notable moments of the session so far, oldest first.
func (l *Lab) Bookmarks() []telemetry.Bookmark {
	return l.bookmarks
}

// Close writes the final population and summary and closes the journal.
func (l *Lab) Close() error {
	if l.output == nil {
		return nil
	}
	cells := l.Cells()
	rows := make([]telemetry.PopulationRow, len(cells))
	for i, r := range cells {
		rows[i] = telemetry.NewPopulationRow(i+1, r.Snapshot, r.Template, r.ParentID, r.Generation)
	}

	var errs []error
	if len(rows) > 0 {
		errs = append(errs, l.output.WritePopulation(rows))
	}
	errs = append(errs, l.output.WriteSummary(l.Report()))
	errs = append(errs, l.output.Close())
	return errors.Join(errs...)
}
