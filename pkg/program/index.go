package program

// Index is the bidirectional mapping between buffer lines and program
// lines for one snapshot of a document. Program lines count every
// non-blank, non-comment buffer line, and the count starts at 1
// immediately below the document's label: the LBL line itself carries no
// program number (the label letter travels in the address instead), and
// neither does anything above it. A document without a label is counted
// from the top.
//
// An Index is valid only for the document state it was built from. It is
// rebuilt from scratch by every operation and discarded afterwards;
// nothing caches one across document mutations.
type Index struct {
	toProgram map[int]int
	toBuffer  []int // toBuffer[p-1] is the buffer line of program line p
}

// BuildIndex makes a single forward pass over the document and assigns
// consecutive program line numbers to every indexed line.
func BuildIndex(doc Document) *Index {
	start := 1
	if labelLine, _, err := FindLabel(doc); err == nil {
		start = labelLine + 1
	}

	ix := &Index{toProgram: make(map[int]int)}
	for n := start; n <= doc.LineCount(); n++ {
		if !Classify(doc.Line(n)).Indexed() {
			continue
		}
		ix.toBuffer = append(ix.toBuffer, n)
		ix.toProgram[n] = len(ix.toBuffer)
	}
	return ix
}

// Len returns the number of program lines.
func (ix *Index) Len() int { return len(ix.toBuffer) }

// BufferLine returns the buffer line holding the given program line.
func (ix *Index) BufferLine(programLine int) (int, bool) {
	if programLine < 1 || programLine > len(ix.toBuffer) {
		return 0, false
	}
	return ix.toBuffer[programLine-1], true
}

// ProgramLine returns the program line number of the given buffer line,
// or false when the buffer line has no program number: blanks, comments,
// and everything at or above the label line.
func (ix *Index) ProgramLine(bufferLine int) (int, bool) {
	p, ok := ix.toProgram[bufferLine]
	return p, ok
}
