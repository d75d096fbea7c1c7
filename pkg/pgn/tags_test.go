package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catachess/chesscore/pkg/pgn"
)

func TestTagsRosterDefaultsAndOrder(t *testing.T) {
	tags := pgn.NewTags()
	lines := tags.Render()
	require := []string{
		`[Event "?"]`,
		`[Site "?"]`,
		`[Date "????.??.??"]`,
		`[Round "?"]`,
		`[White "?"]`,
		`[Black "?"]`,
		`[Result "*"]`,
	}
	assert.Equal(t, require, lines)
}

func TestTagsExtraAfterRosterAlphabetical(t *testing.T) {
	tags := pgn.NewTags()
	tags.Set("ECO", "C20")
	tags.Set("Annotator", "someone")
	lines := tags.Render()

	assert.Equal(t, `[Annotator "someone"]`, lines[7])
	assert.Equal(t, `[ECO "C20"]`, lines[8])
}

func TestTagsEscapesQuotes(t *testing.T) {
	tags := pgn.NewTags()
	tags.Set("Event", `The "Big" Match`)
	lines := tags.Render()
	assert.Contains(t, lines[0], `\"Big\"`)
}

func TestTagsSetters(t *testing.T) {
	tags := pgn.NewTags()
	tags.SetPlayers("Alice", "Bob")
	tags.SetEvent("World Open", "Philadelphia")
	tags.SetDate(2026, 7, 29)
	tags.SetElo(2400, 2200)
	tags.SetTimeControl("90+30")
	tags.SetResult("1/2-1/2")

	white, _ := tags.Get("White")
	assert.Equal(t, "Alice", white)
	date, _ := tags.Get("Date")
	assert.Equal(t, "2026.07.29", date)
	welo, _ := tags.Get("WhiteElo")
	assert.Equal(t, "2400", welo)
	result, _ := tags.Get("Result")
	assert.Equal(t, "1/2-1/2", result)
}
