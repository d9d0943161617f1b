package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rpn35/pkg/cost"
	"github.com/yaklabco/rpn35/pkg/program"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty document", content: "", want: 0},
		{name: "label and return", content: "LBL A\nRTN\n", want: 6},
		{name: "number adds 35", content: "LBL A\nRTN\n5\n", want: 41},
		{name: "niladic instruction", content: "x2\n", want: 3},
		{name: "operand instruction priced by first token", content: "STO A\n", want: 3},
		{name: "jump instruction", content: "GTO A010\n", want: 3},
		{name: "comments and blanks are free", content: "# note\n\nLBL A\n\n# more\nRTN\n", want: 6},
		{name: "unrecognized text is free", content: "stray prose line\n", want: 0},
		{name: "vector", content: "[1,2,3]\n", want: 35},
		// "EQN X^2+1" body is 5 characters: 5 + 3 overhead.
		{name: "equation", content: "EQN X^2+1\n", want: 8},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			doc := program.NewBuffer(testCase.content)
			got := cost.Estimate(doc, cost.DefaultModel())
			assert.Equal(t, testCase.want, got.Total())
		})
	}
}

func TestEstimateBreakdown(t *testing.T) {
	t.Parallel()

	doc := program.NewBuffer("LBL A\nx2\n5\nEQN X+1\nRTN\n")
	b := cost.Estimate(doc, cost.DefaultModel())

	assert.Equal(t, 3, b.Labels)
	assert.Equal(t, 3, b.Returns)
	assert.Equal(t, 3, b.Instructions)
	assert.Equal(t, 35, b.Numbers)
	assert.Equal(t, 6, b.Equations) // "X+1" is 3 characters + 3 overhead
	assert.Equal(t, 50, b.Total())
}

func TestEstimateOrderIndependent(t *testing.T) {
	t.Parallel()

	forward := cost.Estimate(program.NewBuffer("LBL A\n5\nx2\nRTN\n"), nil)
	shuffled := cost.Estimate(program.NewBuffer("RTN\nx2\n5\nLBL A\n"), nil)
	assert.Equal(t, forward.Total(), shuffled.Total())
}

func TestEstimateRestoresCursor(t *testing.T) {
	t.Parallel()

	doc := program.NewBuffer("LBL A\nx2\nRTN\n")
	doc.SetCursor(2)
	cost.Estimate(doc, nil)
	assert.Equal(t, 2, doc.Cursor())
}

func TestEstimateOverrides(t *testing.T) {
	t.Parallel()

	model := cost.NewModel(map[string]int{"LBL": 5, "x2": 10})
	doc := program.NewBuffer("LBL A\nx2\nRTN\n")
	b := cost.Estimate(doc, model)

	require.Equal(t, 5, b.Labels)
	require.Equal(t, 10, b.Instructions)
	require.Equal(t, 3, b.Returns)
}
