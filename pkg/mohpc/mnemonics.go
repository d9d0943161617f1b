package mohpc

import "regexp"

// rewrite is one ordered import substitution: forum notation on the left,
// internal compact name on the right.
type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// importRewrites translate forum-convention mnemonics into the internal
// compact names. The order is load-bearing: the specific caret forms
// ("10^x", "e^x", ...) must run before any future generic "^" handling
// could see them, and the STO/RCL arithmetic forms must run after "+/-"
// has already become "chs" so their operator match cannot eat it.
var importRewrites = []rewrite{
	{regexp.MustCompile(`10\^x`), "10x"},
	{regexp.MustCompile(`e\^x`), "ex"},
	{regexp.MustCompile(`x\^2`), "x2"},
	{regexp.MustCompile(`y\^x`), "yx"},
	{regexp.MustCompile(`x<>y`), "swap"},
	{regexp.MustCompile(`\+/-`), "chs"},

	// STO+/RCL- style register arithmetic. The prefix keeps whatever
	// case the author typed; only the operator is renamed.
	{regexp.MustCompile(`(?i)(STO|RCL) ?\+`), "${1}add"},
	{regexp.MustCompile(`(?i)(STO|RCL) ?-`), "${1}sub"},
	{regexp.MustCompile(`(?i)(STO|RCL) ?\*`), "${1}mul"},
	{regexp.MustCompile(`(?i)(STO|RCL) ?/`), "${1}div"},
}

// translate applies the full rewrite sequence to one code line.
func translate(line string) string {
	for _, r := range importRewrites {
		line = r.pattern.ReplaceAllString(line, r.repl)
	}
	return line
}
