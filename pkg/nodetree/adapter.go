package nodetree

import (
	"sort"
	"strconv"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/catachess/chesscore/pkg/board/fen"
	"github.com/catachess/chesscore/pkg/pgn"
)

// DBToTree assembles a Tree from flat variation/annotation rows. Every row
// whose ParentID is absent is re-parented to the virtual root. chapter, if
// given, populates tree headers and result; setupFEN defaults to the
// standard starting position.
func DBToTree(variations []VariationRow, annotations []AnnotationRow, chapter *ChapterRow, setupFEN string) (*Tree, error) {
	if setupFEN == "" {
		setupFEN = fen.Initial
	}
	t := NewTree(setupFEN)

	childrenByParent := map[string][]VariationRow{}
	for _, row := range variations {
		if row.SAN == "" || row.UCI == "" {
			return nil, &InvalidMoveError{NodeID: row.ID, Msg: "missing san or uci"}
		}
		parentID, ok := row.ParentID.V()
		if !ok || parentID == "" {
			parentID = VirtualRootID
		}

		n := &Node{
			ID:         row.ID,
			ParentID:   parentID,
			SAN:        row.SAN,
			UCI:        row.UCI,
			MoveNumber: row.MoveNumber,
			Color:      Color(row.Color),
			FEN:        row.FEN,
		}
		t.Nodes[row.ID] = n
		childrenByParent[parentID] = append(childrenByParent[parentID], row)
		if row.ChapterID != "" {
			t.ChapterID = row.ChapterID
		}
	}

	for parentID, rows := range childrenByParent {
		parent, ok := t.Nodes[parentID]
		if !ok {
			return nil, &ParentNotFoundError{NodeID: rows[0].ID, ParentID: parentID}
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rank < rows[j].Rank })

		first := true
		for _, row := range rows {
			if row.Rank == 0 && first {
				parent.MainChild = row.ID
				first = false
				continue
			}
			parent.Variations = append(parent.Variations, row.ID)
		}
	}
	assignPly(t, t.Root(), 0)

	for _, row := range annotations {
		n, ok := t.Nodes[row.MoveID]
		if !ok {
			continue // recover locally: orphaned annotation, per §7 policy
		}
		if sym, ok := row.NAG.V(); ok {
			if nag, ok := pgn.ParseNAGSymbol(sym); ok {
				n.NAGs = append(n.NAGs, int(nag))
			} else if num, err := strconv.Atoi(sym); err == nil {
				n.NAGs = append(n.NAGs, num)
			}
		}
		if text, ok := row.Text.V(); ok {
			n.CommentAfter = lang.Some(text)
		}
	}

	if chapter != nil {
		t.Headers["White"] = chapter.White
		t.Headers["Black"] = chapter.Black
		t.Headers["Event"] = chapter.Event
		t.Headers["Date"] = chapter.Date
		t.Result = chapter.Result
		if chapter.ID != "" {
			t.ChapterID = chapter.ID
		}
	}

	return t, nil
}

func assignPly(t *Tree, node *Node, ply int) {
	node.Ply = ply
	children := make([]string, 0, len(node.Variations)+1)
	if node.MainChild != "" {
		children = append(children, node.MainChild)
	}
	children = append(children, node.Variations...)
	for _, id := range children {
		if child, ok := t.Nodes[id]; ok {
			assignPly(t, child, ply+1)
		}
	}
}
