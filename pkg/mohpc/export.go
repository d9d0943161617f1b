// Package mohpc converts between the internal line-per-instruction syntax
// and the numbered exchange format used on the MoHPC forum: lines of the
// shape "A001 mnemonic", with ";" as the comment delimiter.
package mohpc

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rpn35/pkg/program"
)

// Export renders the document in the numbered exchange format. Every
// program line below the label is prefixed with the label letter and its
// 3-digit program line number; the LBL line itself is not emitted (its
// letter travels in every prefix), blank lines are dropped, and comment
// lines pass through verbatim without advancing the counter.
//
// The label invariant failures surface as program.ErrMultipleLabels and
// program.ErrLabelNotFound.
func Export(doc program.Document) (string, error) {
	if err := program.VerifySingleLabel(doc); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	labelLine, label, err := program.FindLabel(doc)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	var out strings.Builder
	counter := 1
	for n := 1; n <= doc.LineCount(); n++ {
		line := doc.Line(n)
		switch cat := program.Classify(line); {
		case cat.Kind == program.KindBlank:
			// dropped
		case cat.Kind == program.KindComment:
			out.WriteString(line)
			out.WriteByte('\n')
		case n <= labelLine:
			// The label line and anything above it have no program
			// number; the program starts on the next line.
		default:
			fmt.Fprintf(&out, "%c%03d %s\n", label, counter, line)
			counter++
		}
	}
	return out.String(), nil
}
