package cell

import (
	"fmt"
	"strings"
)

// Kind tags an entity with its variant. Set at construction, never changed.
type Kind uint8

const (
	KindBasic Kind = iota // Plain replicating cell
	KindBlood             // Carries oxygen across division
	KindBrain             // Carries knowledge across division
)

// Kinds lists every variant in display order.
var Kinds = []Kind{KindBasic, KindBlood, KindBrain}

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindBlood:
		return "blood"
	case KindBrain:
		return "brain"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a kind name (case-insensitive) back to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "":
		return KindBasic, nil
	case "blood":
		return KindBlood, nil
	case "brain":
		return KindBrain, nil
	}
	return KindBasic, fmt.Errorf("unknown cell kind %q", s)
}

// Rules holds the division gate and cost for a kind.
type Rules struct {
	Threshold int // Minimum energy needed to divide
	Cost      int // Energy the parent loses on division
}

var kindRules = [...]Rules{
	KindBasic: {Threshold: 50, Cost: 30},
	KindBlood: {Threshold: 50, Cost: 30},
	KindBrain: {Threshold: 60, Cost: 40},
}

// RulesFor returns the division rules for a kind.
func RulesFor(k Kind) Rules {
	if int(k) < len(kindRules) {
		return kindRules[k]
	}
	return kindRules[KindBasic]
}
