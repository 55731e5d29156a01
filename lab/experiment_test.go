package lab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/mitosis/cell"
)

func TestExperiment(t *testing.T) {
	l := New(Options{IDs: cell.SeededIDs(5), GrowPasses: 2})
	var out strings.Builder
	NewConsole(l, strings.NewReader(""), &out, false).Experiment()

	require.Equal(t, 6, l.Len())
	for _, kind := range cell.Kinds {
		assert.Len(t, l.ByKind(kind), 2, kind.String())
	}

	bloods := l.ByKind(cell.KindBlood)
	assert.Equal(t, 80, bloods[0].Oxygen)
	assert.Equal(t, 50, bloods[1].Oxygen)

	brains := l.ByKind(cell.KindBrain)
	assert.Equal(t, []string{"2+2=4", "sky is blue", "I can divide myself!"}, brains[0].Knowledge)
	assert.Equal(t, []string{"2+2=4", "sky is blue"}, brains[1].Knowledge)

	text := out.String()
	assert.Contains(t, text, "Total cells: 6")
	assert.Contains(t, text, "- Brain cells: 2")
	assert.Contains(t, text, "Brain cell knowledge: 2+2=4, sky is blue, I can divide myself!")

	basic := l.Collector().Counts(cell.KindBasic)
	assert.Equal(t, 2, basic.Grows)
	assert.Equal(t, 1, basic.Divisions)
}
