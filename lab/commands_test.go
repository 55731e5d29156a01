package lab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandMatch(t *testing.T) {
	reg := NewCommandRegistry()

	tests := []struct {
		input  string
		wantID string
		wantOK bool
	}{
		{"1", "create", true},
		{" 8 ", "exit", true},
		{"divide", "divide", true},
		{"QUIT", "exit", true},
		{"o2", "oxygen", true},
		{"divde", "divide", true},
		{"oxygn", "oxygen", true},
		{"templats", "templates", true},
		{"9", "", false},
		{"zzzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := reg.Match(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestCommandMenuOrder(t *testing.T) {
	all := NewCommandRegistry().All()
	assert.Len(t, all, 8)
	for i, cmd := range all {
		assert.Equal(t, string(rune('1'+i)), cmd.Key)
	}
}

func TestClosest(t *testing.T) {
	names := []string{"basic", "blood", "brain"}

	got, ok := closest("Brain", names)
	assert.True(t, ok)
	assert.Equal(t, "brain", got)

	got, ok = closest("blod", names)
	assert.True(t, ok)
	assert.Equal(t, "blood", got)

	_, ok = closest("xx", names)
	assert.False(t, ok)
	_, ok = closest("muscle", names)
	assert.False(t, ok)
}
