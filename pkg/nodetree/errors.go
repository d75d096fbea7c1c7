package nodetree

import "fmt"

// ParentNotFoundError reports a variation row referencing a parent that
// does not exist among the rows being assembled.
type ParentNotFoundError struct {
	NodeID   string
	ParentID string
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("nodetree: node %q references missing parent %q", e.NodeID, e.ParentID)
}

// InvalidMoveError reports a non-root variation row missing SAN or UCI.
type InvalidMoveError struct {
	NodeID string
	Msg    string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("nodetree: invalid move for node %q: %v", e.NodeID, e.Msg)
}

// InvalidVariationError reports a tree-structure invariant violated while
// rendering or replaying a tree (dangling child reference, FEN mismatch
// discovered by BuildFENIndex's replay probe, a VariationWriter invariant
// violation surfaced while building PGN).
type InvalidVariationError struct {
	Msg string
}

func (e *InvalidVariationError) Error() string {
	return fmt.Sprintf("nodetree: invalid variation: %v", e.Msg)
}
