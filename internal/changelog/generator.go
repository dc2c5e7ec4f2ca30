package changelog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evanhongo/gitcz/internal/convention"
	"github.com/evanhongo/gitcz/internal/git"
)

// Generator renders commits into changelog markdown using one convention's
// grammar and section tables.
type Generator struct {
	conv      convention.Convention
	annotator *Annotator
	include   *regexp.Regexp
}

// NewGenerator constructs a Generator. The annotator is built from the
// convention's configured repository, so construction fails fast when the
// repository identifier is missing.
func NewGenerator(conv convention.Convention) (*Generator, error) {
	annotator, err := NewAnnotator(conv.GithubRepo())
	if err != nil {
		return nil, err
	}
	include, err := regexp.Compile(conv.ChangelogPattern())
	if err != nil {
		return nil, fmt.Errorf("invalid changelog pattern for %s: %w", conv.Name(), err)
	}
	return &Generator{conv: conv, annotator: annotator, include: include}, nil
}

// section resolves the changelog heading for a parsed commit. Breaking
// commits group under the convention's breaking section when it has one;
// tokens outside the change type map keep their raw token as heading.
func (g *Generator) section(parsed convention.ParsedCommit) string {
	typeMap := g.conv.ChangeTypeMap()
	if parsed.Breaking {
		if sec, ok := typeMap["break"]; ok {
			return sec
		}
	}
	if sec, ok := typeMap[parsed.ChangeType]; ok {
		return sec
	}
	return parsed.ChangeType
}

// Generate renders the commits under the given release title. Commits whose
// first line does not match the convention's changelog pattern are silently
// skipped; they are uncategorized, not errors.
func (g *Generator) Generate(title string, commits []git.Commit) string {
	entries := make(map[string][]string)
	var seen []string

	for _, commit := range commits {
		if !g.include.MatchString(commit.Subject) {
			continue
		}
		parsed, ok := g.conv.ParseCommit(commit.Subject)
		if !ok {
			continue
		}
		sec := g.section(parsed)
		if _, dup := entries[sec]; !dup {
			seen = append(seen, sec)
		}
		entries[sec] = append(entries[sec], g.annotator.Annotate(parsed.Message, commit.Rev))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", title)

	for _, sec := range g.sectionOrder(seen) {
		if len(entries[sec]) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n\n", sec)
		for _, line := range entries[sec] {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

// sectionOrder merges the convention's explicit ordering with any extra
// sections in first-seen order.
func (g *Generator) sectionOrder(seen []string) []string {
	ordered := g.conv.ChangeTypeOrder()
	listed := make(map[string]bool, len(ordered))
	for _, sec := range ordered {
		listed[sec] = true
	}

	result := append([]string(nil), ordered...)
	for _, sec := range seen {
		if !listed[sec] {
			result = append(result, sec)
		}
	}
	return result
}
