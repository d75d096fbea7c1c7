package nodetree

import "github.com/seekerror/stdlib/pkg/lang"

// VariationRow is the flat DB row contract for one move, keyed by ID.
type VariationRow struct {
	ID         string
	ChapterID  string
	ParentID   lang.Optional[string]
	NextID     lang.Optional[string]
	MoveNumber int
	Color      string // "white" | "black"
	SAN        string
	UCI        string
	FEN        string
	Rank       int
	Priority   int
	Visibility string
	Pinned     bool
	CreatedBy  string
	Version    int
}

// AnnotationRow is a sibling row attaching a comment and/or NAG to a move.
// NAG, when present, may be a conventional glyph ("!") or a raw number
// ("5"); DBToTree maps either through the NAG table.
type AnnotationRow struct {
	ID       string
	MoveID   string
	NAG      lang.Optional[string]
	Text     lang.Optional[string]
	AuthorID string
	Version  int
}

// ChapterRow supplies the PGN seven-tag roster fields and result. It is
// read-only for the core: the adapter never writes it back.
type ChapterRow struct {
	ID     string
	White  string
	Black  string
	Event  string
	Date   string
	Result string
}
