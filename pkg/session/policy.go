package session

// GamePolicy is a value object describing what a session may do. The
// facade asks a policy for capabilities and never inspects which preset
// produced it.
type GamePolicy struct {
	AllowVariations bool
	AllowTakebacks  bool
	AutoEndOnMate   bool
	RecordPGN       bool
}

// StandardGame: no variations, no takebacks, ends automatically on mate,
// records PGN. A normal rated or casual game.
var StandardGame = GamePolicy{
	AllowVariations: false,
	AllowTakebacks:  false,
	AutoEndOnMate:   true,
	RecordPGN:       true,
}

// Analysis: variations and takebacks allowed, never auto-ends, records
// PGN. A free-form analysis board.
var Analysis = GamePolicy{
	AllowVariations: true,
	AllowTakebacks:  true,
	AutoEndOnMate:   false,
	RecordPGN:       true,
}

// Puzzle: takebacks allowed (to retry), no variations, no PGN recorded.
var Puzzle = GamePolicy{
	AllowVariations: false,
	AllowTakebacks:  true,
	AutoEndOnMate:   false,
	RecordPGN:       false,
}

// Study: variations and takebacks allowed, PGN recorded. An annotated
// study chapter under construction.
var Study = GamePolicy{
	AllowVariations: true,
	AllowTakebacks:  true,
	AutoEndOnMate:   false,
	RecordPGN:       true,
}
