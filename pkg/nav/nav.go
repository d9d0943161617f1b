// Package nav resolves jump targets and free-form goto requests against a
// program document and keeps the one-slot jump history.
package nav

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/rpn35/pkg/program"
)

// Navigation failures.
var (
	// ErrInvalidInstruction means the current line is not a two-token
	// "GTO A010" / "XEQ A010" instruction.
	ErrInvalidInstruction = errors.New("current line is not a GTO or XEQ instruction")

	// ErrLabelMismatch means an operand names a label other than the
	// document's own.
	ErrLabelMismatch = errors.New("target label does not match the document label")

	// ErrLineOutOfRange means a program line number has no buffer line.
	ErrLineOutOfRange = errors.New("program line out of range")

	// ErrInvalidLineSpec means a goto spec is not of the form "A031" or "31".
	ErrInvalidLineSpec = errors.New("invalid line spec")

	// ErrNoHistory means there is no jump to return from.
	ErrNoHistory = errors.New("no jump to return from")

	// ErrUnindexedLine means the cursor sits on a blank or comment line,
	// which has no program address to report.
	ErrUnindexedLine = errors.New("cursor is on a blank or comment line")
)

var (
	jumpOperandRe = regexp.MustCompile(`^([A-Z])(\d{3})$`)
	lineSpecRe    = regexp.MustCompile(`^([A-Z])?(\d+)$`)
)

// origin records where a forward jump started.
type origin struct {
	bufferLine  int
	label       byte
	programLine int
}

// Session holds the single-slot jump history. One Session lives as long
// as its document is being edited; history never persists beyond it.
// The zero value is ready to use.
type Session struct {
	history *origin
}

// HasHistory reports whether a JumpBack would succeed.
func (s *Session) HasHistory() bool { return s.history != nil }

// JumpForward resolves the GTO/XEQ instruction under the cursor and moves
// the cursor to its target, recording the origin so one JumpBack can
// return. Any failure restores the cursor, clears the history slot, and
// reports which check failed; a failed jump never leaves a stale origin.
func (s *Session) JumpForward(doc program.Document) (int, error) {
	restore := program.SaveCursor(doc)
	target, err := s.resolveJump(doc)
	if err != nil {
		restore()
		s.history = nil
		return 0, err
	}
	doc.SetCursor(target)
	return target, nil
}

// resolveJump runs the jump checks in contract order and records the
// origin on success. It moves no cursor itself.
func (s *Session) resolveJump(doc program.Document) (int, error) {
	if err := program.VerifySingleLabel(doc); err != nil {
		return 0, err
	}

	tokens := strings.Fields(doc.CurrentLine())
	if len(tokens) != 2 || (tokens[0] != "GTO" && tokens[0] != "XEQ") {
		return 0, ErrInvalidInstruction
	}
	operand := jumpOperandRe.FindStringSubmatch(tokens[1])
	if operand == nil {
		return 0, ErrInvalidInstruction
	}

	_, label, err := program.FindLabel(doc)
	if err != nil {
		return 0, err
	}
	if operand[1][0] != label {
		return 0, fmt.Errorf("%w: %s targets %s, document label is %c",
			ErrLabelMismatch, tokens[0], tokens[1], label)
	}

	targetProgram, _ := strconv.Atoi(operand[2])
	index := program.BuildIndex(doc)
	target, ok := index.BufferLine(targetProgram)
	if !ok {
		return 0, fmt.Errorf("%w: %c%03d", ErrLineOutOfRange, label, targetProgram)
	}

	originProgram, ok := index.ProgramLine(doc.Cursor())
	if !ok {
		// The origin parsed as an instruction, so it is indexed.
		return 0, ErrLineOutOfRange
	}
	s.history = &origin{
		bufferLine:  doc.Cursor(),
		label:       label,
		programLine: originProgram,
	}
	return target, nil
}

// JumpBack returns the cursor to the origin of the last forward jump and
// clears the history slot. The returned description names the origin in
// program-address form, e.g. "A017".
func (s *Session) JumpBack(doc program.Document) (string, error) {
	if s.history == nil {
		return "", ErrNoHistory
	}
	from := s.history
	s.history = nil
	doc.SetCursor(from.bufferLine)
	return fmt.Sprintf("%c%03d", from.label, from.programLine), nil
}

// Goto moves the cursor to the buffer line of a free-form program-line
// spec such as "A031" or "31". Goto is not pairable with JumpBack and
// leaves the history slot alone. Failures restore the cursor.
func Goto(doc program.Document, spec string) (int, error) {
	restore := program.SaveCursor(doc)
	target, err := resolveSpec(doc, spec)
	if err != nil {
		restore()
		return 0, err
	}
	doc.SetCursor(target)
	return target, nil
}

func resolveSpec(doc program.Document, spec string) (int, error) {
	m := lineSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLineSpec, spec)
	}

	_, label, err := program.FindLabel(doc)
	if err != nil {
		return 0, err
	}
	if err := program.VerifySingleLabel(doc); err != nil {
		return 0, err
	}
	if m[1] != "" && m[1][0] != label {
		return 0, fmt.Errorf("%w: spec %q, document label is %c",
			ErrLabelMismatch, spec, label)
	}

	programLine, _ := strconv.Atoi(m[2])
	target, ok := program.BuildIndex(doc).BufferLine(programLine)
	if !ok {
		return 0, fmt.Errorf("%w: %c%03d", ErrLineOutOfRange, label, programLine)
	}
	return target, nil
}

// Report describes the cursor position in program-address form, e.g.
// "A012". Blank and comment lines have no program address. Read-only:
// the cursor and history are untouched.
func Report(doc program.Document) (string, error) {
	if err := program.VerifySingleLabel(doc); err != nil {
		return "", err
	}
	_, label, err := program.FindLabel(doc)
	if err != nil {
		return "", err
	}
	programLine, ok := program.BuildIndex(doc).ProgramLine(doc.Cursor())
	if !ok {
		return "", ErrUnindexedLine
	}
	return fmt.Sprintf("%c%03d", label, programLine), nil
}
