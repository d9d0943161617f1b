package mohpc

import (
	"regexp"
	"strings"
)

// prefixRe strips the "{label}{3 digits}" numbering an exported or
// forum-posted line carries. Lines that do not match are left alone:
// hand-authored forum text is messy and the importer is deliberately
// permissive rather than rejecting malformed prefixes.
var prefixRe = regexp.MustCompile(`^[A-Z]?\d{3}[ \t]*`)

// Import converts exchange-format text into internal program lines.
// Each raw line becomes one or two internal lines: a ";" comment becomes
// a "#" comment, and a trailing ";comment" on a code line is emitted as a
// separate "#" comment line immediately before the code it annotates.
// The "#" comment marker is accepted too, so exported text round-trips.
func Import(text string) []string {
	var out []string
	for _, raw := range splitLines(text) {
		switch {
		case strings.HasPrefix(strings.TrimLeft(raw, " \t"), ";"):
			trimmed := strings.TrimLeft(raw, " \t")
			out = append(out, "#"+trimmed[1:])
		case strings.HasPrefix(raw, "#"):
			out = append(out, raw)
		case strings.Contains(raw, ";"):
			code, comment, _ := strings.Cut(raw, ";")
			out = append(out, "#"+comment, importCode(code))
		default:
			out = append(out, importCode(raw))
		}
	}
	return out
}

// ImportText is Import rendered back to file content with a trailing
// newline. Empty input yields empty output.
func ImportText(text string) string {
	lines := Import(text)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// importCode strips the numbering prefix and translates forum mnemonics.
func importCode(line string) string {
	line = prefixRe.ReplaceAllString(line, "")
	return translate(strings.TrimRight(line, " \t"))
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
