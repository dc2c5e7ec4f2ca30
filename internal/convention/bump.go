package convention

import (
	"regexp"
	"strings"
)

// Increment is the semantic-version component a commit implies bumping.
type Increment int

const (
	IncrementNone Increment = iota
	IncrementPatch
	IncrementMinor
	IncrementMajor
)

func (i Increment) String() string {
	switch i {
	case IncrementPatch:
		return "PATCH"
	case IncrementMinor:
		return "MINOR"
	case IncrementMajor:
		return "MAJOR"
	default:
		return "NONE"
	}
}

// BumpRule pairs a pattern with the increment it implies. Rules form an
// ordered list: broader breaking-change patterns must come before the
// narrower feature/fix patterns, because the first match wins.
type BumpRule struct {
	Pattern   *regexp.Regexp
	Increment Increment
}

// ClassifyBump classifies a commit message in two stages. The convention's
// bump pattern first extracts the keyword (type, optional scope, optional
// "!") from the first line; the ordered rules are then tested against that
// keyword and the first match wins. No keyword or no rule match classifies
// as IncrementNone; that is a valid outcome, not an error.
func ClassifyBump(c Convention, message string) Increment {
	keyword := c.BumpPattern().FindString(firstLine(message))
	if keyword == "" {
		return IncrementNone
	}
	for _, rule := range c.BumpRules() {
		if rule.Pattern.MatchString(keyword) {
			return rule.Increment
		}
	}
	return IncrementNone
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}
