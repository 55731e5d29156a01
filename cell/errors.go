package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientEnergy is returned when a clone is attempted below the kind's threshold.
	ErrInsufficientEnergy = errors.New("insufficient energy to divide")
	// ErrUnknownTemplate is returned when a registry lookup misses.
	ErrUnknownTemplate = errors.New("unknown template")
)

// EnergyError describes a refused division.
type EnergyError struct {
	ID        string
	Kind      Kind
	Energy    int
	Threshold int
}

func (e *EnergyError) Error() string {
	return fmt.Sprintf("%s cell %s has %d energy, needs %d to divide", e.Kind, e.ID, e.Energy, e.Threshold)
}

func (e *EnergyError) Unwrap() error { return ErrInsufficientEnergy }

// TemplateError names the template that could not be found.
type TemplateError struct {
	Name string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("no template registered as %q", e.Name)
}

func (e *TemplateError) Unwrap() error { return ErrUnknownTemplate }
