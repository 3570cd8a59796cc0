package yopt

import "fmt"

// Literals accepted as boolean option values. Comparison is case sensitive.
var (
	trueValues = map[string]bool{
		"TRUE": true, "true": true, "T": true,
		"YES": true, "yes": true, "Y": true, "y": true,
		"1": true,
	}
	falseValues = map[string]bool{
		"FALSE": true, "false": true, "F": true,
		"NO": true, "no": true, "N": true, "n": true,
		"0": true,
	}
)

// parseBool returns the boolean value of s. The error wraps ErrBoolLiteral
// if s is neither a true nor a false literal.
func parseBool(s string) (bool, error) {
	switch {
	case trueValues[s]:
		return true, nil
	case falseValues[s]:
		return false, nil
	}
	return false, fmt.Errorf(`value "%s": %w`, s, ErrBoolLiteral)
}
