package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhongo/gitcz/internal/prompt"
)

func newGithub(t *testing.T) Convention {
	t.Helper()
	conv, err := New("github", "org/repo")
	require.NoError(t, err)
	return conv
}

func TestGithubMessage(t *testing.T) {
	conv := newGithub(t)

	tests := []struct {
		name    string
		answers prompt.Answers
		want    string
	}{
		{
			name: "type scope subject only",
			answers: prompt.Answers{
				"prefix": "feat", "scope": "db", "subject": "add index",
				"body": "", "footer": "",
			},
			want: "feat(db): add index",
		},
		{
			name: "no scope",
			answers: prompt.Answers{
				"prefix": "fix", "scope": "", "subject": "handle nil pointer",
				"body": "", "footer": "",
			},
			want: "fix: handle nil pointer",
		},
		{
			name: "body and footer joined with single newlines",
			answers: prompt.Answers{
				"prefix": "feat", "scope": "api", "subject": "add pagination",
				"body": "limit defaults to 50", "footer": "closes #7",
			},
			want: "feat(api): add pagination\nlimit defaults to 50\ncloses #7",
		},
		{
			name: "breaking change is its own type",
			answers: prompt.Answers{
				"prefix": "break", "scope": "", "subject": "drop v1 endpoints",
				"body": "", "footer": "",
			},
			want: "break: drop v1 endpoints",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.Message(tt.answers))
		})
	}
}

// Composing twice from the same normalized answers must yield identical
// strings.
func TestGithubMessageIdempotent(t *testing.T) {
	conv := newGithub(t)
	answers := prompt.Answers{
		"prefix": "feat", "scope": "db", "subject": "add index",
		"body": "covering index on lookups", "footer": "",
	}
	assert.Equal(t, conv.Message(answers), conv.Message(answers))
}

func TestGithubBumpClassification(t *testing.T) {
	conv := newGithub(t)

	tests := []struct {
		message string
		want    Increment
	}{
		// "feat!: ..." also matches the feat rule; the trailing-bang rule
		// is listed first and must win.
		{"feat!: drop legacy API", IncrementMajor},
		{"BREAKING CHANGE: remove config flag", IncrementMajor},
		{"BREAKING-CHANGE: remove config flag", IncrementMajor},
		{"break: drop v1 endpoints", IncrementMajor},
		{"feat(db): add index", IncrementMinor},
		{"fix: off by one", IncrementPatch},
		{"refactor(core): extract parser", IncrementPatch},
		{"perf: cache lookups", IncrementPatch},
		// Changelog-only types never bump.
		{"docs: fix readme typo", IncrementNone},
		{"style: gofmt", IncrementNone},
		{"test: cover edge cases", IncrementNone},
		{"build: pin toolchain", IncrementNone},
		{"ci: add lint job", IncrementNone},
		{"chore: bump deps", IncrementNone},
		{"not a conventional message", IncrementNone},
		// Only the first line is classified.
		{"docs: readme\nfeat: smuggled into the body", IncrementNone},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBump(conv, tt.message))
		})
	}
}

func TestGithubProcessCommit(t *testing.T) {
	conv := newGithub(t)

	tests := []struct {
		commit string
		want   string
	}{
		{"chore: bump deps", "bump deps"},
		{"feat(db): add index", "add index"},
		{"feat(db)!: add index", "add index"},
		{"not a conventional message", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.commit, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.ProcessCommit(tt.commit))
		})
	}
}

func TestGithubParseCommit(t *testing.T) {
	conv := newGithub(t)

	parsed, ok := conv.ParseCommit("feat(db)!: add index")
	require.True(t, ok)
	assert.Equal(t, "feat", parsed.ChangeType)
	assert.Equal(t, "db", parsed.Scope)
	assert.True(t, parsed.Breaking)
	assert.Equal(t, "add index", parsed.Message)

	parsed, ok = conv.ParseCommit("chore: bump deps\nwith a body")
	require.True(t, ok)
	assert.Equal(t, "chore", parsed.ChangeType)
	assert.Equal(t, "", parsed.Scope)
	assert.False(t, parsed.Breaking)
	assert.Equal(t, "bump deps", parsed.Message)

	_, ok = conv.ParseCommit("random text")
	assert.False(t, ok)
}

func TestNewConvention(t *testing.T) {
	_, err := New("github", "")
	assert.ErrorIs(t, err, ErrRepoNotConfigured)

	_, err = New("does-not-exist", "org/repo")
	assert.Error(t, err)

	conv, err := New("github", "org/repo")
	require.NoError(t, err)
	assert.Equal(t, "org/repo", conv.GithubRepo())

	assert.Equal(t, []string{"github", "github-legacy"}, Names())
}
