package nodetree

import (
	"fmt"
	"strconv"

	"github.com/seekerror/stdlib/pkg/lang"
)

// VariationChanges is the variations half of a TreeToDBChanges diff.
type VariationChanges struct {
	Added   []VariationRow
	Updated []VariationRow
	Deleted []VariationRow
}

// AnnotationChanges is the annotations half of a TreeToDBChanges diff.
type AnnotationChanges struct {
	Added   []AnnotationRow
	Updated []AnnotationRow
	Deleted []AnnotationRow
}

// TreeToDBChanges diffs target against the current DB rows. New variation
// rows are returned with NextID left unset: per the two-phase write-back
// pattern, NextID (a forward reference within a line) is only safe to
// write once every row it might reference has already been inserted, so
// it is reported a second time in Updated once the row has an ID to point
// at, never co-mingled with the Added row's insert.
func TreeToDBChanges(target *Tree, currentVariations []VariationRow, currentAnnotations []AnnotationRow) (VariationChanges, AnnotationChanges, error) {
	var vc VariationChanges

	currentByID := make(map[string]VariationRow, len(currentVariations))
	for _, row := range currentVariations {
		currentByID[row.ID] = row
	}

	seen := map[string]bool{}
	for id, node := range target.Nodes {
		if id == target.RootID {
			continue
		}
		seen[id] = true

		parentID := node.ParentID
		var parentOpt lang.Optional[string]
		if parentID != VirtualRootID {
			parentOpt = lang.Some(parentID)
		}

		var nextOpt lang.Optional[string]
		if node.MainChild != "" {
			nextOpt = lang.Some(node.MainChild)
		}

		rank, err := rankOf(target, node)
		if err != nil {
			return vc, AnnotationChanges{}, err
		}

		current, existed := currentByID[id]
		desired := VariationRow{
			ID:         id,
			ParentID:   parentOpt,
			NextID:     nextOpt,
			MoveNumber: node.MoveNumber,
			Color:      string(node.Color),
			SAN:        node.SAN,
			UCI:        node.UCI,
			FEN:        node.FEN,
			Rank:       rank,
		}
		if existed {
			// fields the tree does not model are preserved from the
			// current row rather than reset to zero values.
			desired.ChapterID = current.ChapterID
			desired.Priority = current.Priority
			desired.Visibility = current.Visibility
			desired.Pinned = current.Pinned
			desired.CreatedBy = current.CreatedBy
			desired.Version = current.Version
			if !sameVariationRow(desired, current) {
				vc.Updated = append(vc.Updated, desired)
			}
		} else {
			// a brand new row has no current counterpart to preserve
			// pass-through fields from; fall back to the tree's own
			// chapter id as a best-effort default.
			desired.ChapterID = target.ChapterID
			inserted := desired
			inserted.NextID = lang.Optional[string]{}
			vc.Added = append(vc.Added, inserted)
			if _, ok := nextOpt.V(); ok {
				vc.Updated = append(vc.Updated, desired)
			}
		}
	}
	for _, row := range currentVariations {
		if !seen[row.ID] {
			vc.Deleted = append(vc.Deleted, row)
		}
	}

	ac, err := diffAnnotations(target, currentAnnotations)
	return vc, ac, err
}

// rankOf reconstructs the row's rank from tree structure: 0 for the main
// child, else one plus its ascending position among its siblings'
// variations. This recovers ordering, not necessarily the exact integer a
// caller originally stored.
func rankOf(t *Tree, node *Node) (int, error) {
	parent, ok := t.Nodes[node.ParentID]
	if !ok {
		return 0, &ParentNotFoundError{NodeID: node.ID, ParentID: node.ParentID}
	}
	if parent.MainChild == node.ID {
		return 0, nil
	}
	for i, id := range parent.Variations {
		if id == node.ID {
			return i + 1, nil
		}
	}
	return 0, &InvalidVariationError{Msg: fmt.Sprintf("node %q is not attached to parent %q", node.ID, node.ParentID)}
}

func sameVariationRow(a, b VariationRow) bool {
	ap, aok := a.ParentID.V()
	bp, bok := b.ParentID.V()
	an, anok := a.NextID.V()
	bn, bnok := b.NextID.V()

	return a.ID == b.ID &&
		a.ChapterID == b.ChapterID &&
		aok == bok && ap == bp &&
		anok == bnok && an == bn &&
		a.MoveNumber == b.MoveNumber &&
		a.Color == b.Color &&
		a.SAN == b.SAN &&
		a.UCI == b.UCI &&
		a.FEN == b.FEN &&
		a.Rank == b.Rank &&
		a.Priority == b.Priority &&
		a.Visibility == b.Visibility &&
		a.Pinned == b.Pinned &&
		a.CreatedBy == b.CreatedBy &&
		a.Version == b.Version
}

type annotationKey struct {
	moveID string
	nag    string
	text   string
}

func keyOf(moveID string, nag lang.Optional[string], text lang.Optional[string]) annotationKey {
	n, _ := nag.V()
	tx, _ := text.V()
	return annotationKey{moveID: moveID, nag: n, text: tx}
}

// diffAnnotations compares (move_id, nag, text) as a set, per spec: an
// entry present on both sides is unchanged regardless of row ID; entries
// only in the desired set are added (with a deterministically synthesized
// ID, since a brand new annotation has none yet); entries only in current
// are deleted, carrying their original row forward unchanged.
func diffAnnotations(target *Tree, current []AnnotationRow) (AnnotationChanges, error) {
	var ac AnnotationChanges

	currentSet := map[annotationKey]AnnotationRow{}
	for _, row := range current {
		currentSet[keyOf(row.MoveID, row.NAG, row.Text)] = row
	}

	desiredSet := map[annotationKey]bool{}
	for id, node := range target.Nodes {
		if id == target.RootID {
			continue
		}
		for i, nag := range node.NAGs {
			k := keyOf(id, lang.Some(strconv.Itoa(nag)), lang.Optional[string]{})
			desiredSet[k] = true
			if _, ok := currentSet[k]; !ok {
				ac.Added = append(ac.Added, AnnotationRow{
					ID:     fmt.Sprintf("%s-nag-%d", id, i),
					MoveID: id,
					NAG:    lang.Some(strconv.Itoa(nag)),
				})
			}
		}
		if text, ok := node.CommentAfter.V(); ok {
			k := keyOf(id, lang.Optional[string]{}, lang.Some(text))
			desiredSet[k] = true
			if _, ok := currentSet[k]; !ok {
				ac.Added = append(ac.Added, AnnotationRow{
					ID:     fmt.Sprintf("%s-comment", id),
					MoveID: id,
					Text:   lang.Some(text),
				})
			}
		}
	}

	for k, row := range currentSet {
		if !desiredSet[k] {
			ac.Deleted = append(ac.Deleted, row)
		}
	}

	return ac, nil
}
