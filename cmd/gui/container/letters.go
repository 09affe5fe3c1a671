package container

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LetterOffset marks the first item whose sort label starts with Letter.
type LetterOffset struct {
	Index  int
	Letter string
}

var smsGroups = [8]string{"ABC2", "DEF3", "GHI4", "JKL5", "MNO6", "PQRS7", "TUV8", "WXYZ9"}

// fold strips diacritics and upper-cases, so "Éclair" sorts under "E".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

func firstLetter(s string) string {
	s = fold(s)
	if s == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(s)
	return s[:n]
}

func (c *Container) updateScrollByLetter() {
	c.letterOffsets = c.letterOffsets[:0]
	current := ""
	for i, it := range c.items {
		if l := firstLetter(it.SortKey()); l != current {
			current = l
			c.letterOffsets = append(c.letterOffsets, LetterOffset{Index: i, Letter: l})
		}
	}
}

func (c *Container) LetterOffsets() []LetterOffset { return c.letterOffsets }

// OnJumpLetter selects the next item whose sort label starts with the typed
// prefix. Letters typed within the match timeout extend the prefix; when a
// longer prefix matches nothing the search restarts with just letter, past
// the current item.
func (c *Container) OnJumpLetter(letter string, skip bool) {
	if c.matchTimer.running && c.matchTimer.elapsed(c.now) < c.cfg.LetterMatchTimeout {
		c.match += letter
	} else {
		c.match = letter
	}
	c.matchTimer.startAt(c.now)

	if len(c.letterOffsets) == 0 || len(c.items) == 0 {
		return
	}
	n := len(c.items)
	offset := c.SelectedIndex()
	i := offset
	if skip {
		i++
	}
	i %= n
	want := fold(c.match)
	for {
		if strings.HasPrefix(fold(c.items[i].SortKey()), want) {
			c.SelectItem(i)
			return
		}
		i = (i + 1) % n
		if i == offset {
			break
		}
	}
	if utf8.RuneCountInString(c.match) > 1 {
		c.match = ""
		c.OnJumpLetter(letter, true)
	}
}

// OnNextLetter selects the first breakpoint after the selection.
func (c *Container) OnNextLetter() {
	offset := c.SelectedIndex()
	for _, lo := range c.letterOffsets {
		if lo.Index > offset {
			c.SelectItem(lo.Index)
			return
		}
	}
}

// OnPrevLetter selects the last breakpoint before the selection.
func (c *Container) OnPrevLetter() {
	offset := c.SelectedIndex()
	for i := len(c.letterOffsets) - 1; i >= 0; i-- {
		if c.letterOffsets[i].Index < offset {
			c.SelectItem(c.letterOffsets[i].Index)
			return
		}
	}
}

// OnJumpSMS cycles through the letters on phone key 2-9: starting after the
// letter under the selection, it selects the first letter of the group that
// has items.
func (c *Container) OnJumpSMS(key int) {
	if key < 2 || key > 9 || len(c.letterOffsets) == 0 {
		return
	}
	letters := smsGroups[key-2]
	offset := c.SelectedIndex()
	current := 0
	for current+1 < len(c.letterOffsets) && c.letterOffsets[current+1].Index <= offset {
		current++
	}
	start := (strings.Index(letters, c.letterOffsets[current].Letter) + 1) % len(letters)
	pos := start
	for {
		want := letters[pos : pos+1]
		for _, lo := range c.letterOffsets {
			if lo.Letter == want {
				c.SelectItem(lo.Index)
				return
			}
		}
		pos = (pos + 1) % len(letters)
		if pos == start {
			return
		}
	}
}
