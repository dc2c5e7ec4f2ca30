package convention

import (
	"fmt"
	"regexp"

	"github.com/evanhongo/gitcz/internal/prompt"
)

// legacyConvention is the original emoji-decorated GitHub convention. Kept
// for repositories whose history predates the plain-token taxonomy.
type legacyConvention struct {
	githubRepo string
}

func init() {
	register("github-legacy", func(githubRepo string) Convention {
		return &legacyConvention{githubRepo: githubRepo}
	})
}

const legacySchemaPattern = `(build|ci|docs|feat|fix|perf|refactor|style|test|chore|revert|bump)(\(\S+\))?!?:(\s.*)`

var (
	legacyBumpPattern = regexp.MustCompile(`^(BREAKING[-\s]CHANGE|🎉? ?feat|🐛? ?fix|🔧? ?refactor|🚀? ?perf)(\(.+\))?(!)?`)

	// Bump rules are ordered: the breaking-change patterns subsume the
	// type patterns and must be tested first.
	legacyBumpRules = []BumpRule{
		{Pattern: regexp.MustCompile(`^.+!$`), Increment: IncrementMajor},
		{Pattern: regexp.MustCompile(`^BREAKING[-\s]CHANGE`), Increment: IncrementMajor},
		{Pattern: regexp.MustCompile(`^🎉? ?feat`), Increment: IncrementMinor},
		{Pattern: regexp.MustCompile(`^🐛? ?fix`), Increment: IncrementPatch},
		{Pattern: regexp.MustCompile(`^🔧? ?refactor`), Increment: IncrementPatch},
		{Pattern: regexp.MustCompile(`^🚀? ?perf`), Increment: IncrementPatch},
	}

	legacyChangelogPattern = `^(BREAKING[-\s]CHANGE|🎉? ?feat|🐛? ?fix|🔧? ?refactor|🚀? ?perf)(\(.+\))?(!)?`

	// Commit parser tolerating an optional leading icon glyph.
	legacyCommitParser = regexp.MustCompile(
		`^(?:[^\x00-\x7F]+ ?)?(?P<change_type>feat|fix|refactor|perf|docs|style|test|build|ci)` +
			`(?:\((?P<scope>[^()\r\n]*)\))?(?P<breaking>!)?: (?P<message>.+)`)

	legacySchemaRe = regexp.MustCompile(`^` + legacySchemaPattern)
)

func (c *legacyConvention) Name() string { return "github-legacy" }

func (c *legacyConvention) GithubRepo() string { return c.githubRepo }

func (c *legacyConvention) Questions() []prompt.Question {
	scopeFilter := func(text string) (string, error) { return prompt.ParseScope(text, "-") }
	return []prompt.Question{
		{
			Kind:    prompt.KindSelect,
			Name:    "prefix",
			Message: "Select the type of change you are committing",
			Choices: []prompt.Choice{
				{Value: "🐛 fix", Label: "🐛 fix: A bug fix. Correlates with PATCH in SemVer"},
				{Value: "🎉 feat", Label: "🎉 feat: A new feature. Correlates with MINOR in SemVer"},
				{Value: "📜 docs", Label: "📜 docs: Documentation only changes"},
				{Value: "😎 style", Label: "😎 style: Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
				{Value: "🔧 refactor", Label: "🔧 refactor: A code change that neither fixes a bug nor adds a feature"},
				{Value: "🚀 perf", Label: "🚀 perf: A code change that improves performance"},
				{Value: "🚦 test", Label: "🚦 test: Adding missing or correcting existing tests"},
				{Value: "🚧 build", Label: "🚧 build: Changes that affect the build system or external dependencies (example scopes: pip, docker, npm)"},
				{Value: "🛸 ci", Label: "🛸 ci: Changes to our CI configuration files and scripts (example scopes: GitLabCI)"},
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
			Kind:    prompt.KindConfirm,
			Name:    "is_breaking_change",
			Message: "Is this a BREAKING CHANGE? Correlates with MAJOR in SemVer",
		},
		{
			Kind:    prompt.KindInput,
			Name:    "footer",
			Message: "Footer. Information about Breaking Changes and reference issues that this commit closes: (press [enter] to skip)",
		},
	}
}

func (c *legacyConvention) Message(answers prompt.Answers) string {
	prefix := answers["prefix"]
	scope := answers["scope"]
	subject := answers["subject"]
	body := answers["body"]
	footer := answers["footer"]

	if scope != "" {
		scope = fmt.Sprintf("(%s)", scope)
	}
	if body != "" {
		body = "\n\n" + body
	}
	if answers.Bool("is_breaking_change") {
		footer = "BREAKING CHANGE 🚨: " + footer
	}
	if footer != "" {
		footer = "\n\n" + footer
	}
	return fmt.Sprintf("%s%s: %s%s%s", prefix, scope, subject, body, footer)
}

func (c *legacyConvention) Example() string {
	return "fix(#12): correct minor typos in code\n" +
		"\n" +
		"see the issue for details on the typos fixed\n" +
		"\n" +
		"closes issue #12"
}

func (c *legacyConvention) Schema() string {
	return "<type>(<scope>): <subject>\n" +
		"<BLANK LINE>\n" +
		"<body>\n" +
		"<BLANK LINE>\n" +
		"(BREAKING CHANGE 🚨: )<footer>"
}

func (c *legacyConvention) SchemaPattern() string { return legacySchemaPattern }

func (c *legacyConvention) ProcessCommit(commit string) string {
	return processCommit(legacySchemaRe, commit)
}

func (c *legacyConvention) ParseCommit(commit string) (ParsedCommit, bool) {
	return parseWith(legacyCommitParser, commit)
}

func (c *legacyConvention) BumpPattern() *regexp.Regexp { return legacyBumpPattern }

func (c *legacyConvention) BumpRules() []BumpRule { return legacyBumpRules }

func (c *legacyConvention) ChangelogPattern() string { return legacyChangelogPattern }

func (c *legacyConvention) ChangeTypeMap() map[string]string {
	return map[string]string{
		"feat":     "Feat",
		"fix":      "Fix",
		"refactor": "Refactor",
		"perf":     "Perf",
	}
}

func (c *legacyConvention) ChangeTypeOrder() []string {
	return []string{"Feat", "Fix", "Refactor", "Perf"}
}
