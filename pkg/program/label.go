package program

import "errors"

// Label invariant failures.
var (
	// ErrMultipleLabels means the document has more than one LBL line.
	ErrMultipleLabels = errors.New("more than one LBL line in document")

	// ErrLabelNotFound means the document has no LBL line.
	ErrLabelNotFound = errors.New("no LBL line in document")
)

// VerifySingleLabel enforces the at-most-one-label invariant.
// A document with zero labels passes; callers that need a label get their
// failure from FindLabel instead.
func VerifySingleLabel(doc Document) error {
	count := 0
	for n := 1; n <= doc.LineCount(); n++ {
		if Classify(doc.Line(n)).Kind == KindLabel {
			count++
			if count > 1 {
				return ErrMultipleLabels
			}
		}
	}
	return nil
}

// FindLabel scans from the top and returns the buffer line and letter of
// the first LBL line.
func FindLabel(doc Document) (bufferLine int, letter byte, err error) {
	for n := 1; n <= doc.LineCount(); n++ {
		if cat := Classify(doc.Line(n)); cat.Kind == KindLabel {
			return n, cat.Letter, nil
		}
	}
	return 0, 0, ErrLabelNotFound
}
