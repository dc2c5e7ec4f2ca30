package bump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhongo/gitcz/internal/convention"
)

func TestHighest(t *testing.T) {
	assert.Equal(t, convention.IncrementNone, Highest(nil))
	assert.Equal(t, convention.IncrementNone, Highest([]convention.Increment{}))
	assert.Equal(t, convention.IncrementPatch, Highest([]convention.Increment{
		convention.IncrementNone, convention.IncrementPatch,
	}))
	assert.Equal(t, convention.IncrementMajor, Highest([]convention.Increment{
		convention.IncrementPatch, convention.IncrementMajor, convention.IncrementMinor,
	}))
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current string
		inc     convention.Increment
		want    string
	}{
		{"patch", "1.2.3", convention.IncrementPatch, "1.2.4"},
		{"minor resets patch", "1.2.3", convention.IncrementMinor, "1.3.0"},
		{"major resets minor and patch", "1.2.3", convention.IncrementMajor, "2.0.0"},
		{"v prefix preserved", "v1.2.3", convention.IncrementMinor, "v1.3.0"},
		{"no tag yet", "", convention.IncrementMinor, "0.1.0"},
		{"short version canonicalized", "1.2", convention.IncrementPatch, "1.2.1"},
		{"prerelease dropped", "v1.2.3-rc.1", convention.IncrementPatch, "v1.2.4"},
		{"none leaves version alone", "1.2.3", convention.IncrementNone, "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.inc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Next("not-a-version", convention.IncrementPatch)
	assert.Error(t, err)
}
