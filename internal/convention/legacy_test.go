package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhongo/gitcz/internal/prompt"
)

func newLegacy(t *testing.T) Convention {
	t.Helper()
	conv, err := New("github-legacy", "org/repo")
	require.NoError(t, err)
	return conv
}

func TestLegacyMessage(t *testing.T) {
	conv := newLegacy(t)

	tests := []struct {
		name    string
		answers prompt.Answers
		want    string
	}{
		{
			name: "subject only",
			answers: prompt.Answers{
				"prefix": "🐛 fix", "scope": "", "subject": "correct typo",
				"body": "", "footer": "", "is_breaking_change": "false",
			},
			want: "🐛 fix: correct typo",
		},
		{
			name: "scope and body separated by blank lines",
			answers: prompt.Answers{
				"prefix": "🎉 feat", "scope": "users", "subject": "add avatars",
				"body": "stored next to the profile", "footer": "", "is_breaking_change": "false",
			},
			want: "🎉 feat(users): add avatars\n\nstored next to the profile",
		},
		{
			name: "breaking change prefixes the footer marker",
			answers: prompt.Answers{
				"prefix": "🔧 refactor", "scope": "", "subject": "rework config",
				"body": "", "footer": "old keys are gone", "is_breaking_change": "true",
			},
			want: "🔧 refactor: rework config\n\nBREAKING CHANGE 🚨: old keys are gone",
		},
		{
			name: "breaking change with empty footer still carries the marker",
			answers: prompt.Answers{
				"prefix": "🎉 feat", "scope": "", "subject": "new engine",
				"body": "", "footer": "", "is_breaking_change": "true",
			},
			want: "🎉 feat: new engine\n\nBREAKING CHANGE 🚨: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.Message(tt.answers))
		})
	}
}

func TestLegacyBumpClassification(t *testing.T) {
	conv := newLegacy(t)

	tests := []struct {
		message string
		want    Increment
	}{
		{"feat!: drop legacy API", IncrementMajor},
		{"BREAKING CHANGE: new wire format", IncrementMajor},
		// Emoji-decorated first lines classify the same as plain ones.
		{"🎉 feat(users): add avatars", IncrementMinor},
		{"feat(users): add avatars", IncrementMinor},
		{"🐛 fix: correct typo", IncrementPatch},
		{"🔧 refactor: rework config", IncrementPatch},
		{"🚀 perf: faster lookups", IncrementPatch},
		// Types outside the bump table fall through to none.
		{"📜 docs: document avatars", IncrementNone},
		{"🚦 test: cover avatars", IncrementNone},
		{"chore: bump deps", IncrementNone},
		{"plain prose", IncrementNone},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBump(conv, tt.message))
		})
	}
}

func TestLegacyProcessCommit(t *testing.T) {
	conv := newLegacy(t)

	assert.Equal(t, "correct minor typos in code", conv.ProcessCommit("fix(#12): correct minor typos in code"))
	assert.Equal(t, "", conv.ProcessCommit("just some text"))
}

func TestLegacyParseCommit(t *testing.T) {
	conv := newLegacy(t)

	parsed, ok := conv.ParseCommit("🎉 feat(users): add avatars")
	require.True(t, ok)
	assert.Equal(t, "feat", parsed.ChangeType)
	assert.Equal(t, "users", parsed.Scope)
	assert.False(t, parsed.Breaking)
	assert.Equal(t, "add avatars", parsed.Message)

	parsed, ok = conv.ParseCommit("fix!: drop fallback")
	require.True(t, ok)
	assert.Equal(t, "fix", parsed.ChangeType)
	assert.True(t, parsed.Breaking)
}

func TestLegacyQuestionsOrder(t *testing.T) {
	conv := newLegacy(t)
	questions := conv.Questions()

	var names []string
	for _, q := range questions {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"prefix", "scope", "subject", "body", "is_breaking_change", "footer"}, names)

	// The github convention drops the confirm question.
	questions = newGithub(t).Questions()
	names = names[:0]
	for _, q := range questions {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"prefix", "scope", "subject", "body", "footer"}, names)
}
