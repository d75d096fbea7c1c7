package nodetree

import (
	"encoding/json"

	"github.com/seekerror/stdlib/pkg/lang"
)

// jsonNode is the wire shape for one node: Optional fields are flattened
// to plain, omittable strings so the artifact has no dependency on the
// Optional encoding.
type jsonNode struct {
	ID            string `json:"id"`
	ParentID      string `json:"parent_id,omitempty"`
	SAN           string `json:"san,omitempty"`
	UCI           string `json:"uci,omitempty"`
	Ply           int    `json:"ply"`
	MoveNumber    int    `json:"move_number"`
	Color         string `json:"color,omitempty"`
	FEN           string `json:"fen"`
	CommentBefore string `json:"comment_before,omitempty"`
	CommentAfter  string `json:"comment_after,omitempty"`
	NAGs          []int  `json:"nags,omitempty"`
	MainChild     string `json:"main_child,omitempty"`
	Variations    []string `json:"variations,omitempty"`
}

type jsonMeta struct {
	Headers  map[string]string `json:"headers,omitempty"`
	Result   string            `json:"result,omitempty"`
	SetupFEN string            `json:"setup_fen"`
}

type jsonTree struct {
	RootID string              `json:"root_id"`
	Nodes  map[string]jsonNode `json:"nodes"`
	Meta   jsonMeta            `json:"meta"`
}

// MarshalJSON produces the {root_id, nodes, meta} blob artifact shape.
func (t *Tree) MarshalJSON() ([]byte, error) {
	out := jsonTree{
		RootID: t.RootID,
		Nodes:  make(map[string]jsonNode, len(t.Nodes)),
		Meta: jsonMeta{
			Headers:  t.Headers,
			Result:   t.Result,
			SetupFEN: t.Root().FEN,
		},
	}
	for id, n := range t.Nodes {
		jn := jsonNode{
			ID:         n.ID,
			ParentID:   n.ParentID,
			SAN:        n.SAN,
			UCI:        n.UCI,
			Ply:        n.Ply,
			MoveNumber: n.MoveNumber,
			Color:      string(n.Color),
			FEN:        n.FEN,
			NAGs:       n.NAGs,
			MainChild:  n.MainChild,
			Variations: n.Variations,
		}
		if v, ok := n.CommentBefore.V(); ok {
			jn.CommentBefore = v
		}
		if v, ok := n.CommentAfter.V(); ok {
			jn.CommentAfter = v
		}
		out.Nodes[id] = jn
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the {root_id, nodes, meta} blob artifact shape.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var in jsonTree
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	t.RootID = in.RootID
	t.Headers = in.Meta.Headers
	if t.Headers == nil {
		t.Headers = map[string]string{}
	}
	t.Result = in.Meta.Result
	t.Nodes = make(map[string]*Node, len(in.Nodes))

	for id, jn := range in.Nodes {
		n := &Node{
			ID:         jn.ID,
			ParentID:   jn.ParentID,
			SAN:        jn.SAN,
			UCI:        jn.UCI,
			Ply:        jn.Ply,
			MoveNumber: jn.MoveNumber,
			Color:      Color(jn.Color),
			FEN:        jn.FEN,
			NAGs:       jn.NAGs,
			MainChild:  jn.MainChild,
			Variations: jn.Variations,
		}
		if jn.CommentBefore != "" {
			n.CommentBefore = lang.Some(jn.CommentBefore)
		}
		if jn.CommentAfter != "" {
			n.CommentAfter = lang.Some(jn.CommentAfter)
		}
		t.Nodes[id] = n
	}
	return nil
}
