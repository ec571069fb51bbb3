// Package gitrepo wraps the go-git operations the bootstrap run needs:
// reading the origin remote, staging everything and creating the final
// commit. No git binary is shelled out to.
package gitrepo

import (
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
)

// Repo is an open git repository rooted at the template checkout
type Repo struct {
	repo   *git.Repository
	dryRun bool
	logger zerolog.Logger
}

// Open opens the repository at root
func Open(root string, dryRun bool) (*Repo, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGitOpen, "opening git repository at %s", root)
	}
	return &Repo{
		repo:   repo,
		dryRun: dryRun,
		logger: logging.GetLogger("gitrepo"),
	}, nil
}

// OriginURL returns the first URL of the origin remote
func (r *Repo) OriginURL() (string, error) {
	remote, err := r.repo.Remote("origin")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGitOpen, "reading origin remote")
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.New(errors.ErrGitOpen, "origin remote has no URL")
	}
	return urls[0], nil
}

// CommitAll stages every change in the worktree and creates a single commit
// with the given message. The author is taken from the repository's git
// configuration; an unconfigured identity is an error rather than a silent
// fallback.
func (r *Repo) CommitAll(message string) (plumbing.Hash, error) {
	if r.dryRun {
		r.logger.Info().Str("message", message).Msg("Dry run: would stage all changes and commit")
		return plumbing.ZeroHash, nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrGitStage, "opening worktree")
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrGitStage, "staging changes")
	}

	sig, err := r.signature()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: sig})
	if err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrGitCommit, "creating commit")
	}

	r.logger.Info().Str("hash", hash.String()).Str("message", message).Msg("Created commit")
	return hash, nil
}

func (r *Repo) signature() (*object.Signature, error) {
	cfg, err := r.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitCommit, "reading git configuration")
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, errors.New(errors.ErrGitCommit, "git user.name and user.email must be configured")
	}
	return &object.Signature{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		When:  time.Now(),
	}, nil
}
