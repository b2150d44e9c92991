package revision

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// DefaultShortLength matches the abbreviation of `git rev-parse --short`.
const DefaultShortLength = 7

// ErrHeadUnavailable is returned when HEAD does not point to a commit yet.
var ErrHeadUnavailable = errors.New("repository HEAD is not available")

// GitRevision resolves HEAD of the repository containing Path.
type GitRevision struct {
	// Path is any path inside the working tree; parent directories are searched for .git.
	Path string
	// Length is the number of hash characters returned; DefaultShortLength when zero.
	Length int
}

// NewGitRevision creates a revision source for the repository containing path.
func NewGitRevision(path string) *GitRevision {
	return &GitRevision{
		Path:   path,
		Length: DefaultShortLength,
	}
}

// Revision returns the abbreviated hash of the HEAD commit.
func (g *GitRevision) Revision(_ context.Context) (string, error) {
	repo, err := git.PlainOpenWithOptions(g.Path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("open repository %s: %w", g.Path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHeadUnavailable, err)
	}

	hash := head.Hash().String()

	length := g.Length
	if length <= 0 {
		length = DefaultShortLength
	}

	if length < len(hash) {
		hash = hash[:length]
	}

	return hash, nil
}
