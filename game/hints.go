package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	hintMaxDistance = 2
	hintMinRunes    = 3
)

// matchKeyword reports whether the input equals one of the step's
// keywords, ignoring case.
func matchKeyword(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.EqualFold(input, kw) {
			return true
		}
	}
	return false
}

// nearMiss returns the keyword closest to the input within edit
// distance two. Inputs under three runes never hint; ties go to the
// earlier keyword.
func nearMiss(input string, keywords []string) (string, bool) {
	if utf8.RuneCountInString(input) < hintMinRunes {
		return "", false
	}
	in := strings.ToLower(input)
	best := ""
	bestDist := hintMaxDistance + 1
	for _, kw := range keywords {
		if d := levenshtein.ComputeDistance(in, strings.ToLower(kw)); d < bestDist {
			best = kw
			bestDist = d
		}
	}
	if bestDist > hintMaxDistance {
		return "", false
	}
	return best, true
}

// sayInvalid renders the invalid-input line, with a spelling hint when
// the input nearly matched a keyword. A hint never accepts the input.
func (g *Game) sayInvalid(input string, keywords []string) {
	msg := g.Catalog.Combat.PlayerInvalid
	if kw, ok := nearMiss(input, keywords); ok {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, kw)
	}
	g.GW.Say(msg)
}
