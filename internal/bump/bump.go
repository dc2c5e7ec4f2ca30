// Package bump computes the next semantic version from classified commits.
package bump

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/evanhongo/gitcz/internal/convention"
)

// Highest returns the largest increment among incs, or IncrementNone for an
// empty slice.
func Highest(incs []convention.Increment) convention.Increment {
	highest := convention.IncrementNone
	for _, inc := range incs {
		if inc > highest {
			highest = inc
		}
	}
	return highest
}

// Next applies inc to the current version. An empty current version starts
// from 0.0.0. The "v" prefix of the result follows the input: "v1.2.3" bumps
// to "v1.3.0", "1.2.3" to "1.3.0". IncrementNone returns current unchanged.
func Next(current string, inc convention.Increment) (string, error) {
	if inc == convention.IncrementNone {
		return current, nil
	}

	prefix := ""
	if strings.HasPrefix(current, "v") {
		prefix = "v"
	}
	canonical := "v" + strings.TrimPrefix(current, "v")
	if current == "" {
		canonical = "v0.0.0"
	}
	canonical = semver.Canonical(canonical)
	if !semver.IsValid(canonical) {
		return "", fmt.Errorf("current version %q is not a semantic version", current)
	}

	// Canonical guarantees a vMAJOR.MINOR.PATCH core; build metadata is
	// already stripped and prerelease suffixes are dropped below.
	core := canonical
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core = core[:i]
	}
	parts := strings.SplitN(strings.TrimPrefix(core, "v"), ".", 3)
	major, _ := strconv.Atoi(parts[0])
	minor, _ := strconv.Atoi(parts[1])
	patch, _ := strconv.Atoi(parts[2])

	switch inc {
	case convention.IncrementMajor:
		major, minor, patch = major+1, 0, 0
	case convention.IncrementMinor:
		minor, patch = minor+1, 0
	case convention.IncrementPatch:
		patch++
	}

	return fmt.Sprintf("%s%d.%d.%d", prefix, major, minor, patch), nil
}
