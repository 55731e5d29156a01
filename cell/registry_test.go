package cell

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRegistryDefaults(t *testing.T) {
	r := NewRegistry(WithIDSource(SeededIDs(7)))

	if got := r.Names(); !slices.Equal(got, []string{"basic", "blood", "brain"}) {
		t.Fatalf("Names() = %q", got)
	}

	blood, ok := r.Inspect("blood")
	if !ok || blood.Kind != KindBlood || blood.Oxygen != 50 || blood.Energy != 100 {
		t.Errorf("blood seed = %+v", blood)
	}
	brain, ok := r.Inspect("brain")
	if !ok || !slices.Equal(brain.Knowledge, []string{"2+2=4", "sky is blue"}) {
		t.Errorf("brain seed = %+v", brain)
	}
}

func TestInstantiateBlood(t *testing.T) {
	r := NewRegistry()

	e, err := r.Instantiate("blood")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	child, ok := e.(*BloodCell)
	if !ok {
		t.Fatalf("instance is %T", e)
	}
	if child.Energy() != 80 || child.Age() != 0 || child.Oxygen() != 50 {
		t.Errorf("child energy %d age %d oxygen %d", child.Energy(), child.Age(), child.Oxygen())
	}
	if child.DNA() != SeedDNA {
		t.Errorf("child dna = %q", child.DNA())
	}

	seed, _ := r.Inspect("blood")
	if seed.Energy != 70 || seed.Age != 2 {
		t.Errorf("seed energy %d age %d, want 70 and 2", seed.Energy, seed.Age)
	}
}

func TestInstantiateDepletesSeed(t *testing.T) {
	tests := []struct {
		name          string
		template      string
		wantSuccesses int
		wantEnergy    int
	}{
		{"basic", "basic", 6, 20},
		{"blood", "blood", 6, 20},
		{"brain", "brain", 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			successes := 0
			var err error
			for i := 0; i < 20; i++ {
				if _, err = r.Instantiate(tt.template); err != nil {
					break
				}
				successes++
			}
			if !errors.Is(err, ErrInsufficientEnergy) {
				t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
			}
			if successes != tt.wantSuccesses {
				t.Errorf("successes = %d, want %d", successes, tt.wantSuccesses)
			}

			seed, _ := r.Inspect(tt.template)
			if seed.Energy != tt.wantEnergy {
				t.Errorf("seed energy = %d, want %d", seed.Energy, tt.wantEnergy)
			}
			if seed.Age != 2*tt.wantSuccesses {
				t.Errorf("seed age = %d, failed call must not age the seed", seed.Age)
			}
		})
	}
}

func TestInstantiateUnknownTemplate(t *testing.T) {
	r := NewRegistry()
	before := make(map[string]Snapshot)
	for _, name := range r.Names() {
		before[name], _ = r.Inspect(name)
	}

	_, err := r.Instantiate("muscle")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
	var tmplErr *TemplateError
	if !errors.As(err, &tmplErr) || tmplErr.Name != "muscle" {
		t.Errorf("err = %#v", err)
	}

	for _, name := range r.Names() {
		after, _ := r.Inspect(name)
		if after.Energy != before[name].Energy || after.Age != before[name].Age {
			t.Errorf("template %q changed: %+v -> %+v", name, before[name], after)
		}
	}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	r.Register("muscle", New("M"))
	r.Register("blood", NewBlood("O", 90))
	r.Register("ghost", nil)

	if got := r.Names(); !slices.Equal(got, []string{"basic", "blood", "brain", "muscle"}) {
		t.Fatalf("Names() = %q", got)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d", r.Len())
	}

	e, err := r.Instantiate("blood")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if e.DNA() != "O" || e.(*BloodCell).Oxygen() != 90 {
		t.Errorf("instance came from the old seed: %s", e.Describe())
	}
}

func TestRegisterAcceptsDepletedSeed(t *testing.T) {
	r := NewRegistry()
	r.Register("weak", New("W", WithEnergy(10)))

	_, err := r.Instantiate("weak")
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
	}
	seed, _ := r.Inspect("weak")
	if seed.Energy != 10 || seed.Age != 0 {
		t.Errorf("seed changed on failed instantiate: %+v", seed)
	}

	var energyErr *EnergyError
	if !errors.As(err, &energyErr) {
		t.Fatalf("err = %T, want *EnergyError", err)
	}
	if energyErr.Energy != seed.Energy || energyErr.ID != seed.ID {
		t.Errorf("error reports %s at %d energy, seed is %s at %d", energyErr.ID, energyErr.Energy, seed.ID, seed.Energy)
	}
}

func TestRegisterZeroValueVariants(t *testing.T) {
	r := NewRegistry()
	r.Register("bare-brain", &BrainCell{})

	if _, err := r.Instantiate("bare-brain"); !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
	}
	seed, _ := r.Inspect("bare-brain")
	if seed.Kind != KindBrain {
		t.Errorf("seed kind = %s, want brain", seed.Kind)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	names[0] = "changed"
	if r.Names()[0] != "basic" {
		t.Error("Names() leaked internal slice")
	}
}

func TestInspectMissing(t *testing.T) {
	if _, ok := NewRegistry().Inspect("nope"); ok {
		t.Error("Inspect found a template that was never registered")
	}
}
