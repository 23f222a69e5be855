package dfcmd

import "strings"

// SplitArgs splits the raw arguments of a command into tokens.
func SplitArgs(raw string) []string {
	return strings.Fields(raw)
}
