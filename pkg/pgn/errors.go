package pgn

import "fmt"

// WriteError reports a writer invariant violation, such as EndVariation
// without a matching StartVariation, or StartVariation on an empty frame.
type WriteError struct {
	Msg string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("pgn write error: %v", e.Msg)
}
