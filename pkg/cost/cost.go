// Package cost estimates the calculator memory a program occupies, using
// the fixed per-category byte costs of the HP-35s.
package cost

import (
	"github.com/yaklabco/rpn35/pkg/program"
)

// Model prices lines by category and mnemonic. The zero-config model uses
// the built-in costs; overrides replace the cost of individual mnemonics
// (including "LBL" and "RTN") for forum variants that price differently.
type Model struct {
	overrides map[string]int
}

// NewModel creates a Model with per-mnemonic cost overrides. A nil or
// empty map yields the default model.
func NewModel(overrides map[string]int) *Model {
	m := &Model{overrides: make(map[string]int, len(overrides))}
	for k, v := range overrides {
		m.overrides[k] = v
	}
	return m
}

// DefaultModel returns the built-in HP-35s cost model.
func DefaultModel() *Model { return NewModel(nil) }

// instructionCost prices an instruction-like line, honoring overrides by
// the matched mnemonic name. Unrecognized text costs nothing.
func (m *Model) instructionCost(line string) int {
	name, c, ok := program.LookupInstruction(line)
	if !ok {
		return 0
	}
	if o, ok := m.overrides[name]; ok {
		return o
	}
	return c
}

// Breakdown is a per-category byte subtotal for one document.
type Breakdown struct {
	Labels       int
	Returns      int
	Instructions int
	Numbers      int
	Equations    int
}

// Total sums the per-category subtotals.
func (b Breakdown) Total() int {
	return b.Labels + b.Returns + b.Instructions + b.Numbers + b.Equations
}

// Estimate scans the whole document and prices every line. The scan is
// read-only; the cursor is saved on entry and restored before returning.
// Category precedence follows the classifier, so each line lands in at
// most one bucket.
func Estimate(doc program.Document, model *Model) Breakdown {
	if model == nil {
		model = DefaultModel()
	}
	defer program.SaveCursor(doc)()

	var b Breakdown
	for n := 1; n <= doc.LineCount(); n++ {
		line := doc.Line(n)
		switch cat := program.Classify(line); cat.Kind {
		case program.KindLabel:
			b.Labels += model.instructionCost(line)
		case program.KindReturn:
			b.Returns += model.instructionCost(line)
		case program.KindEquation:
			b.Equations += program.EquationCost(cat.Equation)
		case program.KindInstruction, program.KindUnrecognized:
			b.Instructions += model.instructionCost(line)
		case program.KindNumeric:
			b.Numbers += program.CostNumber
		case program.KindBlank, program.KindComment:
			// free
		}
	}
	return b
}
