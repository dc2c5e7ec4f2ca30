package convention

import (
	"fmt"
	"regexp"

	"github.com/evanhongo/gitcz/internal/prompt"
)

// githubConvention is the current plain-token taxonomy. Breaking changes are
// a first-class "break" type rather than a confirm question, and body/footer
// segments are joined with single newlines.
type githubConvention struct {
	githubRepo string
}

func init() {
	register("github", func(githubRepo string) Convention {
		return &githubConvention{githubRepo: githubRepo}
	})
}

const githubSchemaPattern = `(break|build|ci|docs|feat|fix|perf|refactor|style|test|chore|revert|bump)(\(\S+\))?!?:(\s.*)`

var (
	githubBumpPattern = regexp.MustCompile(`^(BREAKING[-\s]CHANGE|break|feat|fix|refactor|perf)(\(.+\))?(!)?`)

	githubBumpRules = []BumpRule{
		{Pattern: regexp.MustCompile(`^.+!$`), Increment: IncrementMajor},
		{Pattern: regexp.MustCompile(`^BREAKING[-\s]CHANGE`), Increment: IncrementMajor},
		{Pattern: regexp.MustCompile(`^break`), Increment: IncrementMajor},
		{Pattern: regexp.MustCompile(`^feat`), Increment: IncrementMinor},
		{Pattern: regexp.MustCompile(`^fix`), Increment: IncrementPatch},
		{Pattern: regexp.MustCompile(`^refactor`), Increment: IncrementPatch},
		{Pattern: regexp.MustCompile(`^perf`), Increment: IncrementPatch},
	}

	githubCommitParser = regexp.MustCompile(
		`^(?P<change_type>break|feat|fix|refactor|perf|docs|style|test|build|ci|chore)` +
			`(?:\((?P<scope>[^()\r\n]*)\))?(?P<breaking>!)?:\s(?P<message>.*)`)

	githubSchemaRe = regexp.MustCompile(`^` + githubSchemaPattern)
)

func (c *githubConvention) Name() string { return "github" }

func (c *githubConvention) GithubRepo() string { return c.githubRepo }

func (c *githubConvention) Questions() []prompt.Question {
	scopeFilter := func(text string) (string, error) { return prompt.ParseScope(text, ",") }
	return []prompt.Question{
		{
			Kind:    prompt.KindSelect,
			Name:    "prefix",
			Message: "Select the type of change you are committing",
			Choices: []prompt.Choice{
				{Value: "feat", Label: "feat: A new feature. Correlates with MINOR in SemVer"},
				{Value: "fix", Label: "fix: A bug fix. Correlates with PATCH in SemVer"},
				{Value: "refactor", Label: "refactor: A code change that neither fixes a bug nor adds a feature"},
				{Value: "perf", Label: "perf: A code change that improves performance"},
				{Value: "break", Label: "break: A BREAKING CHANGE. Correlates with MAJOR in SemVer"},
				{Value: "docs", Label: "docs: Documentation only changes"},
				{Value: "style", Label: "style: Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
				{Value: "test", Label: "test: Adding missing or correcting existing tests"},
				{Value: "build", Label: "build: Changes that affect the build system or external dependencies (example scopes: docker, npm)"},
				{Value: "ci", Label: "ci: Changes to CI configuration files and scripts"},
				{Value: "chore", Label: "chore: Routine maintenance that touches no production code"},
			},
		},
		{
			Kind:    prompt.KindInput,
			Name:    "scope",
			Message: "Scope. Could be anything specifying place of the commit change (users, db, poll):",
			Filter:  scopeFilter,
		},
		{
			Kind:    prompt.KindInput,
			Name:    "subject",
			Message: "Write a short and imperative summary of the code changes: (lower case and no period)",
			Filter:  prompt.ParseSubject,
		},
		{
			Kind:      prompt.KindInput,
			Name:      "body",
			Message:   "Provide additional contextual information about the code changes: (press [enter] to skip)",
			Filter:    prompt.MultipleLineBreaker,
			Multiline: true,
		},
		{
			Kind:    prompt.KindInput,
			Name:    "footer",
			Message: "Footer. Information about Breaking Changes and reference issues that this commit closes: (press [enter] to skip)",
		},
	}
}

func (c *githubConvention) Message(answers prompt.Answers) string {
	prefix := answers["prefix"]
	scope := answers["scope"]
	subject := answers["subject"]
	body := answers["body"]
	footer := answers["footer"]

	if scope != "" {
		scope = fmt.Sprintf("(%s)", scope)
	}
	if body != "" {
		body = "\n" + body
	}
	if footer != "" {
		footer = "\n" + footer
	}
	return fmt.Sprintf("%s%s: %s%s%s", prefix, scope, subject, body, footer)
}

func (c *githubConvention) Example() string {
	return "feat(cache): add caching layer\n" +
		"introduce an in-memory cache in front of the tag store\n" +
		"closes issue #42"
}

func (c *githubConvention) Schema() string {
	return "<type>(<scope>): <subject>\n" +
		"<body>\n" +
		"<footer>"
}

func (c *githubConvention) SchemaPattern() string { return githubSchemaPattern }

func (c *githubConvention) ProcessCommit(commit string) string {
	return processCommit(githubSchemaRe, commit)
}

func (c *githubConvention) ParseCommit(commit string) (ParsedCommit, bool) {
	return parseWith(githubCommitParser, commit)
}

func (c *githubConvention) BumpPattern() *regexp.Regexp { return githubBumpPattern }

func (c *githubConvention) BumpRules() []BumpRule { return githubBumpRules }

func (c *githubConvention) ChangelogPattern() string { return `^` + githubSchemaPattern }

func (c *githubConvention) ChangeTypeMap() map[string]string {
	return map[string]string{
		"break":    "BREAKING CHANGE",
		"feat":     "Feat",
		"fix":      "Fix",
		"refactor": "Refactor",
		"perf":     "Perf",
		"docs":     "Docs",
		"style":    "Style",
		"test":     "Test",
		"build":    "Build",
		"ci":       "CI",
		"chore":    "Chore",
	}
}

func (c *githubConvention) ChangeTypeOrder() []string {
	return []string{
		"BREAKING CHANGE", "Feat", "Fix", "Refactor", "Perf",
		"Docs", "Style", "Test", "Build", "CI", "Chore",
	}
}
