// Package moderation masks forbidden words in content as a read-time stage.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks dictionary words in message content. Matching ignores case,
// punctuation and a few look-alike digits, so "$.p.4.m" is caught as "spam".
// Its Censor method has the shape of a transform stage.
type Moderator struct {
	machine *goahocorasick.Machine
	mask    rune
}

// NewModerator builds the matcher from the folded dictionary words.
// An empty dictionary gives a moderator that leaves content untouched.
func NewModerator(words []string, mask rune, log *slog.Logger) (*Moderator, error) {
	mod := &Moderator{mask: mask}
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if folded, _ := fold(word); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}
	if len(patterns) == 0 {
		return mod, nil
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	mod.machine = machine
	log.Debug("Moderator built", "words", len(patterns))
	return mod, nil
}

// Censor masks every rune spanned by a match, noise between letters included.
func (m *Moderator) Censor(content string) string {
	if m.machine == nil {
		return content
	}
	folded, positions := fold(content)
	if len(folded) == 0 {
		return content
	}
	hits := m.machine.MultiPatternSearch(folded, false)
	if len(hits) == 0 {
		return content
	}

	runes := []rune(content)
	for _, hit := range hits {
		last := hit.Pos + len(hit.Word) - 1
		if hit.Pos < 0 || last >= len(positions) {
			continue
		}
		for i := positions[hit.Pos]; i <= positions[last]; i++ {
			runes[i] = m.mask
		}
	}
	return string(runes)
}

// fold lowercases the letters of s, drops noise runes and returns, for each
// kept rune, its position in s.
func fold(s string) ([]rune, []int) {
	runes := []rune(s)
	folded := make([]rune, 0, len(runes))
	positions := make([]int, 0, len(runes))
	for i, r := range runes {
		r = lookalike(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		positions = append(positions, i)
	}
	return folded, positions
}

func lookalike(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return r
}
