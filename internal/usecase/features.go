package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var negationPattern = regexp.MustCompile(`(?i)\b(not|never|no|don't|won't|can't|shouldn't)\b`)

// Features are the coarse lexical signals that nudge engine confidence.
type Features struct {
	Length       int  `json:"length"`
	Questions    int  `json:"questions"`
	Exclamations int  `json:"exclamations"`
	HasNegation  bool `json:"has_negation"`
}

func ExtractFeatures(text string) Features {
	return Features{
		Length:       utf8.RuneCountInString(text),
		Questions:    strings.Count(text, "?"),
		Exclamations: strings.Count(text, "!"),
		HasNegation:  negationPattern.MatchString(text),
	}
}
