package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/rpn35/pkg/cost"
)

// estimate table geometry.
const (
	categoryWidth = 14
	bytesWidth    = 8
)

// RenderEstimate writes a per-category memory breakdown and total.
// The rule line shrinks to fit narrow terminals.
func RenderEstimate(w io.Writer, styles *Styles, b cost.Breakdown) {
	width := categoryWidth + bytesWidth
	if tw := terminalWidth(w); tw > 0 && tw < width {
		width = tw
	}

	rows := []struct {
		name  string
		bytes int
	}{
		{"labels", b.Labels},
		{"returns", b.Returns},
		{"instructions", b.Instructions},
		{"numbers", b.Numbers},
		{"equations", b.Equations},
	}

	fmt.Fprintln(w, styles.TableHeader.Render(
		pad("category", categoryWidth)+pad("bytes", bytesWidth)))
	fmt.Fprintln(w, styles.Dim.Render(strings.Repeat("-", width)))
	for _, row := range rows {
		fmt.Fprintln(w,
			styles.Category.Render(pad(row.name, categoryWidth))+
				styles.Bytes.Render(fmt.Sprintf("%d", row.bytes)))
	}
	fmt.Fprintln(w, styles.Dim.Render(strings.Repeat("-", width)))
	fmt.Fprintln(w, styles.Total.Render(
		pad("total", categoryWidth)+fmt.Sprintf("%d", b.Total())))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
