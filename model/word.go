package model

import "sort"

// Word is a single recognized text fragment on a page.
//
// Position is the center of the fragment's box, expressed relative to the
// page's top-left corner. Words are created once, when a page source's raw
// fragments are converted, and are immutable afterward.
type Word struct {
	Position Point
	Text     string
}

// NewWord creates a word at the given center position
func NewWord(x, y float64, text string) Word {
	return Word{Position: Point{X: x, Y: y}, Text: text}
}

// SortWords orders words ascending by Y, then by X for words sharing a
// line. Pages sort their word list exactly once, at construction; the
// bucketing and row-detection algorithms assume this ordering and never
// re-sort.
func SortWords(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Position.Y != words[j].Position.Y {
			return words[i].Position.Y < words[j].Position.Y
		}
		return words[i].Position.X < words[j].Position.X
	})
}

// WordsWithin returns the words whose position lies inside r, preserving
// their original order.
func WordsWithin(words []Word, r Rect) []Word {
	var inside []Word
	for _, w := range words {
		if r.Contains(w.Position) {
			inside = append(inside, w)
		}
	}
	return inside
}

// CountWordsWithin returns the number of words whose position lies inside r
func CountWordsWithin(words []Word, r Rect) int {
	count := 0
	for _, w := range words {
		if r.Contains(w.Position) {
			count++
		}
	}
	return count
}
