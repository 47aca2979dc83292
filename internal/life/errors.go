package life

import "fmt"

// InvalidSeparatorError reports a separator rune that collides with one of
// the cell symbols, which would make the seed encoding ambiguous.
type InvalidSeparatorError struct {
	Separator rune
}

func (e InvalidSeparatorError) Error() string {
	return fmt.Sprintf("invalid seed separator: %q", e.Separator)
}

// InvalidSeedCharacterError reports a seed character outside the alive/dead
// symbol pair. The whole decode is aborted; no partial grid is produced.
type InvalidSeedCharacterError struct {
	Char  rune
	Alive rune
	Dead  rune
}

func (e InvalidSeedCharacterError) Error() string {
	return fmt.Sprintf("invalid seed character: %q, expected %q or %q", e.Char, e.Alive, e.Dead)
}

// RenderError reports a renderer that failed to produce well-formed output.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string {
	return fmt.Sprintf("render: %v", e.Err)
}

func (e RenderError) Unwrap() error { return e.Err }
