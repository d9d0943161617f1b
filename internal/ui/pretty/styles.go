// Package pretty provides Lipgloss-based styled output for rpn35.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/rpn35/pkg/config"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Address styles program addresses like "A012" and resolved buffer
	// line numbers.
	Address lipgloss.Style

	// Estimate table
	TableHeader lipgloss.Style
	Category    lipgloss.Style
	Bytes       lipgloss.Style
	Total       lipgloss.Style

	Dim lipgloss.Style
}

// NewStyles creates Styles for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Address:     plain,
			TableHeader: plain,
			Category:    plain,
			Bytes:       plain,
			Total:       plain,
			Dim:         plain,
		}
	}
	return &Styles{
		Address:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Bytes:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Total:       lipgloss.NewStyle().Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled resolves a color mode against the output destination.
// Mode "auto" enables color only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}
