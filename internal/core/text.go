package core

import "strings"

// ParseRows splits initial-configuration text into rectangular rows and checks
// every character against alphabet. Trailing carriage returns and trailing
// blank lines are ignored. Any other deviation is a *MalformedInputError.
// Columns count characters, not bytes, and a bad character is reported before
// a ragged row.
func ParseRows(text, alphabet string) ([]string, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &MalformedInputError{Reason: "no rows"}
	}
	width := -1
	for i, line := range lines {
		col := 0
		for _, ch := range line {
			col++
			if !strings.ContainsRune(alphabet, ch) {
				return nil, &MalformedInputError{Line: i + 1, Column: col, Char: ch}
			}
		}
		if width < 0 {
			width = col
		}
		if col != width {
			return nil, &MalformedInputError{Line: i + 1, Reason: "row length differs from first row"}
		}
	}
	return lines, nil
}
