package pgn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// rosterOrder is the Seven Tag Roster, in the fixed order mandated for
// output.
var rosterOrder = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

var rosterDefaults = map[string]string{
	"Event":  "?",
	"Site":   "?",
	"Date":   "????.??.??",
	"Round":  "?",
	"White":  "?",
	"Black":  "?",
	"Result": "*",
}

func isRosterTag(name string) bool {
	for _, r := range rosterOrder {
		if r == name {
			return true
		}
	}
	return false
}

// Tags holds a game's header fields. The seven-tag roster is always
// present (falling back to its defaults); additional tags are emitted
// alphabetically after the roster.
type Tags struct {
	values map[string]string
}

// NewTags returns a Tags populated with the seven-tag roster defaults.
func NewTags() *Tags {
	t := &Tags{values: make(map[string]string, len(rosterOrder))}
	for k, v := range rosterDefaults {
		t.values[k] = v
	}
	return t
}

func (t *Tags) Set(name, value string) {
	t.values[name] = value
}

func (t *Tags) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

func (t *Tags) SetPlayers(white, black string) {
	t.Set("White", white)
	t.Set("Black", black)
}

func (t *Tags) SetEvent(event, site string) {
	t.Set("Event", event)
	t.Set("Site", site)
}

func (t *Tags) SetDate(year, month, day int) {
	t.Set("Date", fmt.Sprintf("%04d.%02d.%02d", year, month, day))
}

func (t *Tags) SetElo(whiteElo, blackElo int) {
	t.Set("WhiteElo", strconv.Itoa(whiteElo))
	t.Set("BlackElo", strconv.Itoa(blackElo))
}

func (t *Tags) SetTimeControl(tc string) {
	t.Set("TimeControl", tc)
}

func (t *Tags) SetResult(result string) {
	t.Set("Result", result)
}

// Render returns one "[Tag \"value\"]" line per tag: the roster first, in
// fixed order, then every other tag alphabetically.
func (t *Tags) Render() []string {
	var lines []string
	for _, name := range rosterOrder {
		v := t.values[name]
		if v == "" {
			v = rosterDefaults[name]
		}
		lines = append(lines, formatTagLine(name, v))
	}

	var extra []string
	for name := range t.values {
		if !isRosterTag(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		lines = append(lines, formatTagLine(name, t.values[name]))
	}
	return lines
}

func formatTagLine(name, value string) string {
	escaped := strings.ReplaceAll(value, `"`, `\"`)
	return fmt.Sprintf("[%s \"%s\"]", name, escaped)
}
