// Package convention implements the commit conventions gitcz understands.
//
// A Convention bundles everything the CLI needs to build, validate, classify,
// and report on commits of one message grammar: the interactive questions,
// the message composer, the schema pattern, and the bump/changelog rule
// tables. Two conventions ship in this repository: "github" (the current
// taxonomy) and "github-legacy" (the earlier emoji-decorated one).
package convention

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/evanhongo/gitcz/internal/prompt"
)

// ErrRepoNotConfigured is returned when a convention is constructed without
// a GitHub repository identifier. Changelog links cannot be built without
// it, so construction refuses to proceed rather than degrade silently.
var ErrRepoNotConfigured = errors.New("github_repo is not configured")

// Convention is the capability surface a commit convention implements.
type Convention interface {
	// Name is the registry key of this convention.
	Name() string

	// GithubRepo returns the owner/name identifier commit links point at.
	GithubRepo() string

	// Questions returns the ordered prompts used to build a commit
	// message interactively.
	Questions() []prompt.Question

	// Message assembles a commit message from collected answers.
	// Answers are assumed to be already normalized by the question
	// filters; no validation is re-run here.
	Message(answers prompt.Answers) string

	// Example returns an illustrative commit message.
	Example() string

	// Schema returns a human-readable description of the grammar.
	Schema() string

	// SchemaPattern returns the regular expression source a valid
	// commit's first line must match.
	SchemaPattern() string

	// ProcessCommit extracts the description from a conventional commit
	// line. A non-matching line yields the empty string, never an error.
	ProcessCommit(commit string) string

	// ParseCommit breaks a commit's first line into its grammar parts.
	// ok is false when the line does not follow the convention.
	ParseCommit(commit string) (parsed ParsedCommit, ok bool)

	// BumpPattern returns the expression that extracts the bump keyword
	// (type, optional scope, optional "!") from a commit's first line.
	BumpPattern() *regexp.Regexp

	// BumpRules returns the ordered classification rules tested against
	// the extracted bump keyword. First match wins.
	BumpRules() []BumpRule

	// ChangelogPattern returns the regular expression source deciding
	// whether a commit appears in the changelog at all.
	ChangelogPattern() string

	// ChangeTypeMap maps a change type token to its changelog section
	// heading. Tokens absent from the map fall back to the raw token.
	ChangeTypeMap() map[string]string

	// ChangeTypeOrder returns changelog section headings in render
	// order. Sections not listed are appended in first-seen order.
	ChangeTypeOrder() []string
}

// factory builds a convention bound to a GitHub repository identifier.
type factory func(githubRepo string) Convention

var registry = map[string]factory{}

func register(name string, f factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("convention %q already registered", name))
	}
	registry[name] = f
}

// DefaultName is the convention used when the config does not pick one.
const DefaultName = "github"

// New constructs a registered convention. The repository identifier is
// required up front: every convention builds commit links from it.
func New(name, githubRepo string) (Convention, error) {
	if githubRepo == "" {
		return nil, ErrRepoNotConfigured
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown convention %q (available: %v)", name, Names())
	}
	return f(githubRepo), nil
}

// Names returns the registered convention names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsedCommit is the decomposition of a conventional commit's first line.
type ParsedCommit struct {
	ChangeType string
	Scope      string
	Breaking   bool
	Message    string
}

// processCommit extracts the trimmed description from a schema-pattern
// match of the commit's first line. No match yields the empty string.
func processCommit(re *regexp.Regexp, commit string) string {
	m := re.FindStringSubmatch(firstLine(commit))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[3])
}

// parseWith applies a commit parser built with the named capture groups
// change_type, scope, breaking, and message.
func parseWith(re *regexp.Regexp, commit string) (ParsedCommit, bool) {
	m := re.FindStringSubmatch(firstLine(commit))
	if m == nil {
		return ParsedCommit{}, false
	}
	var p ParsedCommit
	for i, name := range re.SubexpNames() {
		switch name {
		case "change_type":
			p.ChangeType = m[i]
		case "scope":
			p.Scope = m[i]
		case "breaking":
			p.Breaking = m[i] != ""
		case "message":
			p.Message = m[i]
		}
	}
	return p, true
}
