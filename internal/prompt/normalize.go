package prompt

import (
	"errors"
	"strings"
)

// ErrSubjectRequired is returned by ParseSubject when the input is empty
// after normalization. The runner surfaces it and asks again.
var ErrSubjectRequired = errors.New("Subject is required.")

// ParseScope normalizes a scope answer into a single token. Whitespace is
// trimmed; if the input splits into several words they are joined with sep.
// Empty input stays empty (the scope segment is simply omitted).
func ParseScope(text, sep string) (string, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) == 1 {
		return fields[0], nil
	}
	return strings.Join(fields, sep), nil
}

// ParseSubject strips trailing periods and surrounding whitespace. An empty
// result is rejected with ErrSubjectRequired.
func ParseSubject(text string) (string, error) {
	text = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), "."))
	if text == "" {
		return "", ErrSubjectRequired
	}
	return text, nil
}

// MultipleLineBreaker normalizes multi-line body text. Adjacent non-blank
// lines are joined into one paragraph line, and runs of blank lines collapse
// to a single paragraph break. Empty input yields the empty string.
func MultipleLineBreaker(text string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n"), nil
}
