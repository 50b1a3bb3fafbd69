// Package guess parses and validates raw guess input for a code-breaking
// round. A Validator carries the code dimensions so they stay configurable
// in one place; the zero value is not usable, construct one from config.
package guess

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExit is returned by Parse when the player types the exit token
// instead of a guess. It is a request to leave the round, not a failure.
var ErrExit = errors.New("exit requested")

// exitToken ends a round from the guess prompt, case-insensitive.
const exitToken = "exit"

// Rule identifies which validation rule a raw guess violated.
type Rule int

const (
	// RuleLength means the input was not exactly CodeLength characters.
	RuleLength Rule = iota
	// RuleCharacter means the input contained a non-digit character.
	RuleCharacter
	// RuleRange means a digit fell outside [MinDigit, MaxDigit].
	RuleRange
)

// ValidationError describes a rejected guess. The caller re-prompts; a
// ValidationError never ends the round.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Guess is a validated code guess. Immutable once built.
type Guess struct {
	digits string
}

// String returns the digit sequence exactly as validated.
func (g Guess) String() string {
	return g.digits
}

// Validator holds the format rules a guess must satisfy.
type Validator struct {
	CodeLength int
	MinDigit   int
	MaxDigit   int
}

// Parse validates one line of raw input. It trims whitespace and
// lower-cases before matching the exit token, which is accepted
// unconditionally. Anything else must be exactly CodeLength decimal
// digits, each within [MinDigit, MaxDigit].
func (v Validator) Parse(raw string) (Guess, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == exitToken {
		return Guess{}, ErrExit
	}

	if len(s) != v.CodeLength {
		return Guess{}, ValidationError{
			Rule:    RuleLength,
			Message: fmt.Sprintf("guess must be exactly %d digits", v.CodeLength),
		}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Guess{}, ValidationError{
				Rule:    RuleCharacter,
				Message: fmt.Sprintf("guess must contain only digits, got %q", r),
			}
		}
		d := int(r - '0')
		if d < v.MinDigit || d > v.MaxDigit {
			return Guess{}, ValidationError{
				Rule:    RuleRange,
				Message: fmt.Sprintf("digits must be between %d and %d, got %d", v.MinDigit, v.MaxDigit, d),
			}
		}
	}

	return Guess{digits: s}, nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
