package cell

import "slices"

// SeedDNA is the genetic code of the built-in templates.
const SeedDNA = "HUMAN_DNA"

// Registry holds one live seed cell per template name. Instantiating a
// template grows the seed and divides it, so seeds age and deplete with use.
// A Registry is not safe for concurrent use.
type Registry struct {
	templates map[string]Entity
	names     []string
}

// NewRegistry creates a registry holding the built-in templates:
// "basic", "blood" (oxygen 50) and "brain" (two seed facts).
// Options apply to every built-in seed.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		templates: make(map[string]Entity),
	}
	r.registerDefaults(opts)
	return r
}

func (r *Registry) registerDefaults(opts []Option) {
	r.Register("basic", New(SeedDNA, opts...))
	r.Register("blood", NewBlood(SeedDNA, 50, opts...))
	r.Register("brain", NewBrain(SeedDNA, []string{"2+2=4", "sky is blue"}, opts...))
}

// Register stores e under name, replacing any existing template of that name.
// A replaced name keeps its listing position. Nil entities are ignored.
func (r *Registry) Register(name string, e Entity) {
	if e == nil {
		return
	}
	if _, ok := r.templates[name]; !ok {
		r.names = append(r.names, name)
	}
	r.templates[name] = e
}

// Instantiate grows the named seed once and returns its clone.
// Either both steps apply or neither does: when the grown seed would still be
// below its division threshold, the seed is left untouched and the division
// error is returned.
func (r *Registry) Instantiate(name string) (Entity, error) {
	seed, ok := r.templates[name]
	if !ok {
		return nil, &TemplateError{Name: name}
	}

	grown := min(MaxEnergy, seed.Energy()+GrowthEnergy)
	rules := RulesFor(seed.Kind())
	if grown < rules.Threshold {
		return nil, &EnergyError{ID: seed.ID(), Kind: seed.Kind(), Energy: seed.Energy(), Threshold: rules.Threshold}
	}

	seed.Grow()
	return seed.Clone()
}

// Names returns template names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of templates.
func (r *Registry) Len() int {
	return len(r.names)
}

// Inspect returns a snapshot of the named seed without touching it.
func (r *Registry) Inspect(name string) (Snapshot, bool) {
	seed, ok := r.templates[name]
	if !ok {
		return Snapshot{}, false
	}
	return Snap(seed), true
}
