package program

import (
	"regexp"
	"strings"
)

// Kind is the semantic category of a single line of program text.
type Kind int

// Line categories, in classification precedence order.
const (
	KindComment Kind = iota
	KindLabel
	KindReturn
	KindEquation
	KindInstruction
	KindNumeric
	KindBlank
	KindUnrecognized
)

// String returns the category name for logging and test output.
func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindLabel:
		return "label"
	case KindReturn:
		return "return"
	case KindEquation:
		return "equation"
	case KindInstruction:
		return "instruction"
	case KindNumeric:
		return "numeric"
	case KindBlank:
		return "blank"
	default:
		return "unrecognized"
	}
}

// Category is the classification result for one line.
type Category struct {
	Kind Kind

	// Letter is the label letter when Kind is KindLabel.
	Letter byte

	// Mnemonic is the matched vocabulary entry when Kind is KindInstruction.
	Mnemonic string

	// Equation is the equation body (text after the "EQN " marker) when
	// Kind is KindEquation.
	Equation string
}

// Indexed reports whether lines of this category occupy a program line.
// Blanks and comments are skipped by the line index; everything else,
// including unrecognized text, counts.
func (c Category) Indexed() bool {
	return c.Kind != KindBlank && c.Kind != KindComment
}

// equationMarker prefixes equation lines. Its length is part of the
// equation byte-cost formula.
const equationMarker = "EQN "

var (
	labelRe = regexp.MustCompile(`^LBL ([A-Z])$`)

	// Leading numeric, fraction, or vector syntax. Covers plain and
	// exponent-form numbers ("5", "3.14", "1.2e-4"), HP fraction entry
	// ("1 3/4", "3/8") and bracketed vectors ("[1,2,3]").
	numericRe = regexp.MustCompile(
		`^[+-]?(\[[^\]]*\]|(\d+(\.\d*)?|\.\d+)(e[+-]?\d+)?( \d+/\d+)?|\d+/\d+)$`)
)

// Classify pattern-matches one line of internal program text into its
// category. Pure function; precedence is fixed and first match wins:
// comment, label, return, equation, instruction, numeric/vector, blank.
// Anything left is unrecognized instruction-like text, which still
// occupies a program line but carries no byte cost.
func Classify(line string) Category {
	if strings.HasPrefix(line, "#") {
		return Category{Kind: KindComment}
	}
	if m := labelRe.FindStringSubmatch(line); m != nil {
		return Category{Kind: KindLabel, Letter: m[1][0]}
	}
	if line == "RTN" {
		return Category{Kind: KindReturn}
	}
	if strings.HasPrefix(line, equationMarker) {
		return Category{Kind: KindEquation, Equation: line[len(equationMarker):]}
	}
	if _, ok := niladicCosts[line]; ok {
		return Category{Kind: KindInstruction, Mnemonic: line}
	}
	if numericRe.MatchString(line) {
		return Category{Kind: KindNumeric}
	}
	if strings.TrimSpace(line) == "" {
		return Category{Kind: KindBlank}
	}
	return Category{Kind: KindUnrecognized}
}
