package formatter

import "regexp"

// ansiPattern matches ANSI escape sequences for stripping before
// content assertions, keeping tests terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
