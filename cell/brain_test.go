package cell

import (
	"errors"
	"slices"
	"testing"
)

func TestLearnAppendsInOrder(t *testing.T) {
	b := NewBrain("Y", []string{"a", "b"})
	b.Learn("c")
	b.Learn("a")
	b.Learn("")

	want := []string{"a", "b", "c", "a", ""}
	if got := b.Knowledge(); !slices.Equal(got, want) {
		t.Errorf("knowledge = %q, want %q", got, want)
	}
}

func TestKnowledgeReturnsCopy(t *testing.T) {
	b := NewBrain("Y", []string{"a"})
	k := b.Knowledge()
	k[0] = "changed"
	_ = append(k, "extra")

	if got := b.Knowledge(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("knowledge = %q, accessor leaked internal state", got)
	}
}

func TestNewBrainCopiesInput(t *testing.T) {
	seed := []string{"a", "b"}
	b := NewBrain("Y", seed)
	seed[0] = "z"

	if got := b.Knowledge(); got[0] != "a" {
		t.Errorf("knowledge = %q, constructor kept caller slice", got)
	}
}

func TestBrainCloneCopiesKnowledge(t *testing.T) {
	parent := NewBrain("Y", []string{"a", "b"}, WithEnergy(100))
	parent.Learn("c")

	child, err := parent.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	brain, ok := child.(*BrainCell)
	if !ok {
		t.Fatalf("child is %T, want *BrainCell", child)
	}

	want := []string{"a", "b", "c"}
	if got := brain.Knowledge(); !slices.Equal(got, want) {
		t.Errorf("child knowledge = %q, want %q", got, want)
	}
	if parent.Energy() != 60 || parent.Age() != 1 {
		t.Errorf("parent energy %d age %d, want 60 and 1", parent.Energy(), parent.Age())
	}
	if brain.DNA() != "Y" || brain.Energy() != OffspringEnergy || brain.Age() != 0 {
		t.Errorf("child dna %q energy %d age %d", brain.DNA(), brain.Energy(), brain.Age())
	}

	brain.Learn("child only")
	parent.Learn("parent only")
	if got := parent.Knowledge(); !slices.Equal(got, []string{"a", "b", "c", "parent only"}) {
		t.Errorf("parent knowledge = %q", got)
	}
	if got := brain.Knowledge(); !slices.Equal(got, []string{"a", "b", "c", "child only"}) {
		t.Errorf("child knowledge = %q", got)
	}
}

func TestBrainCloneNeedsMoreEnergy(t *testing.T) {
	tests := []struct {
		name    string
		energy  int
		wantErr bool
	}{
		{"base threshold is not enough", 50, true},
		{"just under", 59, true},
		{"at threshold", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrain("Y", []string{"a"}, WithEnergy(tt.energy))
			_, err := b.Clone()
			if tt.wantErr {
				if !errors.Is(err, ErrInsufficientEnergy) {
					t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
				}
				if b.Energy() != tt.energy || b.Age() != 0 || len(b.Knowledge()) != 1 {
					t.Errorf("state changed on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Clone: %v", err)
			}
			if b.Energy() != tt.energy-40 {
				t.Errorf("energy = %d, want %d", b.Energy(), tt.energy-40)
			}
		})
	}
}
