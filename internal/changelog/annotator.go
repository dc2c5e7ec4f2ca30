// Package changelog turns classified commits into an annotated markdown
// changelog, with every entry linking back to its commit on GitHub.
package changelog

import (
	"fmt"

	"github.com/evanhongo/gitcz/internal/convention"
)

// shortRevLen is how many characters of the revision the link label shows.
const shortRevLen = 5

// Annotator appends GitHub commit links to changelog entry messages.
type Annotator struct {
	githubRepo string
}

// NewAnnotator creates an Annotator for the given "owner/name" repository.
// An empty identifier is refused up front: silently omitting links would be
// worse than failing.
func NewAnnotator(githubRepo string) (*Annotator, error) {
	if githubRepo == "" {
		return nil, convention.ErrRepoNotConfigured
	}
	return &Annotator{githubRepo: githubRepo}, nil
}

// Annotate returns message with a markdown link to the commit appended. The
// input is not modified; callers replace their stored message with the
// result. Annotating an already-annotated message appends another link,
// which is expected: the caller owns calling this exactly once per entry.
func (a *Annotator) Annotate(message, rev string) string {
	short := rev
	if len(short) > shortRevLen {
		short = short[:shortRevLen]
	}
	return fmt.Sprintf("%s [%s](https://github.com/%s/commit/%s)", message, short, a.githubRepo, rev)
}
