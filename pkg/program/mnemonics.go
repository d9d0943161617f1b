package program

import "strings"

// Byte costs on the HP-35s. Almost every instruction occupies three
// bytes; a number takes a full stack register entry.
const (
	CostInstruction = 3
	CostNumber      = 35

	// equationOverhead is added to an equation's text length after the
	// "EQN " marker is subtracted.
	equationOverhead = 3
)

// niladicCosts is the closed vocabulary of whole-line mnemonics in the
// internal compact syntax, with their byte costs. Case-sensitive; a line
// must match an entry exactly to classify as an instruction.
var niladicCosts = map[string]int{
	"+": CostInstruction, "-": CostInstruction,
	"*": CostInstruction, "/": CostInstruction,
	"%": CostInstruction, "!": CostInstruction,

	"ENTER": CostInstruction,
	"swap":  CostInstruction,
	"chs":   CostInstruction,
	"Rdown": CostInstruction,
	"Rup":   CostInstruction,
	"LASTx": CostInstruction,
	"CLx":   CostInstruction,
	"CLSTK": CostInstruction,

	"x2":    CostInstruction,
	"sqrt":  CostInstruction,
	"yx":    CostInstruction,
	"xroot": CostInstruction,
	"inv":   CostInstruction,
	"LOG":   CostInstruction,
	"10x":   CostInstruction,
	"LN":    CostInstruction,
	"ex":    CostInstruction,
	"PI":    CostInstruction,
	"ABS":   CostInstruction,
	"IP":    CostInstruction,
	"FP":    CostInstruction,
	"RND":   CostInstruction,

	"SIN": CostInstruction, "COS": CostInstruction, "TAN": CostInstruction,
	"ASIN": CostInstruction, "ACOS": CostInstruction, "ATAN": CostInstruction,

	"STOP": CostInstruction,
	"PSE":  CostInstruction,
	"RTN":  CostInstruction,

	"x=y?": CostInstruction, "x!=y?": CostInstruction,
	"x<y?": CostInstruction, "x<=y?": CostInstruction,
	"x>y?": CostInstruction, "x>=y?": CostInstruction,
	"x=0?": CostInstruction, "x!=0?": CostInstruction,
	"x<0?": CostInstruction, "x>0?": CostInstruction,
}

// operandCosts lists operand-taking mnemonic families, matched by a
// line's first token. Only the cost scan consults this table; the
// classifier proper requires a whole-line vocabulary match.
var operandCosts = map[string]int{
	"LBL": CostInstruction,
	"GTO": CostInstruction,
	"XEQ": CostInstruction,

	"STO": CostInstruction, "RCL": CostInstruction,
	"STOadd": CostInstruction, "STOsub": CostInstruction,
	"STOmul": CostInstruction, "STOdiv": CostInstruction,
	"RCLadd": CostInstruction, "RCLsub": CostInstruction,
	"RCLmul": CostInstruction, "RCLdiv": CostInstruction,

	"INPUT": CostInstruction,
	"VIEW":  CostInstruction,
	"SF":    CostInstruction, "CF": CostInstruction,
	"FS?": CostInstruction, "FC?": CostInstruction,
	"DSE": CostInstruction, "ISG": CostInstruction,
	"FIX": CostInstruction, "SCI": CostInstruction, "ENG": CostInstruction,
}

// LookupInstruction reports the mnemonic and byte cost for an instruction
// line. Whole-line niladic mnemonics are tried first, then the line's
// first token against the operand-taking families ("STO A", "GTO A010").
// This lookup is deliberately looser than Classify: cost accounting
// prices operand lines the classifier files under unrecognized.
func LookupInstruction(line string) (mnemonic string, cost int, ok bool) {
	if c, ok := niladicCosts[line]; ok {
		return line, c, true
	}
	tok, _, _ := strings.Cut(line, " ")
	if c, ok := operandCosts[tok]; ok {
		return tok, c, true
	}
	return "", 0, false
}

// EquationCost prices an equation body: its text length plus the fixed
// per-entity overhead. The "EQN " marker itself is free.
func EquationCost(body string) int {
	return len(body) + equationOverhead
}
