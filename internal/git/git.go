// Package git wraps the git CLI for the handful of operations gitcz needs:
// inspecting staged changes, committing, listing history, and tagging.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Commit is one entry of the repository history.
type Commit struct {
	// Rev is the full commit hash.
	Rev string

	// Subject is the first line of the commit message.
	Subject string

	// Body is the rest of the message, without the separating blank line.
	Body string
}

// Message reassembles the full commit message.
func (c Commit) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}

// Git executes git commands against a repository working tree.
type Git struct {
	gitPath string
}

// NewGit creates a Git instance, verifying that git is available.
func NewGit(ctx context.Context) (*Git, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, gitPath, "version")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git command failed: %w", err)
	}

	return &Git{gitPath: gitPath}, nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func (g *Git) HasStagedChanges(ctx context.Context, repoPath string) (bool, error) {
	cmd := exec.CommandContext(ctx, g.gitPath, "-C", repoPath, "diff", "--cached", "--name-only")
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("git diff --cached failed in %s: %w", repoPath, err)
	}
	return strings.TrimSpace(string(output)) != "", nil
}

// Commit records the staged changes with the given message and returns the
// new commit hash.
func (g *Git) Commit(ctx context.Context, repoPath, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("commit message is required")
	}

	commitCmd := exec.CommandContext(ctx, g.gitPath, "-C", repoPath, "commit", "-m", message)
	if out, err := commitCmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git commit failed in %s: %w\n%s", repoPath, err, out)
	}

	return g.Head(ctx, repoPath)
}

// Head returns the full hash of HEAD.
func (g *Git) Head(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, g.gitPath, "-C", repoPath, "rev-parse", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse HEAD failed in %s: %w", repoPath, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// LatestTag returns the most recent tag reachable from HEAD, or "" when the
// repository has no tags yet.
func (g *Git) LatestTag(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, g.gitPath, "-C", repoPath, "describe", "--tags", "--abbrev=0")
	output, err := cmd.Output()
	if err != nil {
		// describe exits non-zero when no tag is reachable; an untagged
		// repository is a normal state, not an error.
		return "", nil
	}
	return strings.TrimSpace(string(output)), nil
}

// Tag creates a lightweight tag at HEAD.
func (g *Git) Tag(ctx context.Context, repoPath, name string) error {
	cmd := exec.CommandContext(ctx, g.gitPath, "-C", repoPath, "tag", name)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git tag %s failed in %s: %w\n%s", name, repoPath, err, out)
	}
	return nil
}

// Field and record separators for log output. The format string carries
// git's %x escapes (argv must stay free of raw NUL bytes); git expands them,
// so the output is split on the raw bytes.
const (
	logFormat = "--format=%H%x00%s%x00%b%x1e"
	fieldSep  = "\x00"
	recordSep = "\x1e"
)

// Log lists commits in revRange, newest first. An empty revRange lists the
// whole history of HEAD.
func (g *Git) Log(ctx context.Context, repoPath, revRange string) ([]Commit, error) {
	args := []string{"-C", repoPath, "log", logFormat}
	if revRange != "" {
		args = append(args, revRange)
	}

	cmd := exec.CommandContext(ctx, g.gitPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed in %s: %w", repoPath, err)
	}

	var commits []Commit
	for _, record := range strings.Split(string(output), recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		parts := strings.SplitN(record, fieldSep, 3)
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, Commit{
			Rev:     parts[0],
			Subject: parts[1],
			Body:    strings.TrimSpace(parts[2]),
		})
	}
	return commits, nil
}
