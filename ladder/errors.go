package ladder

import "errors"

var (
	// ErrLengthMismatch is returned when the two words differ in length.
	ErrLengthMismatch = errors.New("ladder: words differ in length")

	// ErrNotInLexicon is returned when either word is missing from the lexicon.
	ErrNotInLexicon = errors.New("ladder: word not in lexicon")
)
