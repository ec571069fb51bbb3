package gitrepo

import (
	"strings"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

// ParseRemoteURL extracts (owner, repo) from a git remote URL. Exactly two
// forms are recognized:
//
//	git@<host>:<owner>/<repo>.git
//	https://<host>/<owner>/<repo>.git
//
// Any other form, including a missing .git suffix, returns an error with
// code ErrRemoteForm. The caller is expected to degrade to a warning and
// leave the derived values unset.
func ParseRemoteURL(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)

	var path string
	switch {
	case strings.HasPrefix(raw, "git@"):
		colon := strings.Index(raw, ":")
		if colon < 0 {
			return "", "", errors.Newf(errors.ErrRemoteForm, "unrecognized remote URL %q: missing ':' after host", raw)
		}
		path = raw[colon+1:]
	case strings.HasPrefix(raw, "https://"):
		rest := strings.TrimPrefix(raw, "https://")
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", "", errors.Newf(errors.ErrRemoteForm, "unrecognized remote URL %q: missing path after host", raw)
		}
		path = rest[slash+1:]
	default:
		return "", "", errors.Newf(errors.ErrRemoteForm, "unrecognized remote URL %q: expected git@host:owner/repo.git or https://host/owner/repo.git", raw)
	}

	trimmed, ok := strings.CutSuffix(path, ".git")
	if !ok {
		return "", "", errors.Newf(errors.ErrRemoteForm, "unrecognized remote URL %q: missing .git suffix", raw)
	}

	owner, repo, ok = strings.Cut(trimmed, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", errors.Newf(errors.ErrRemoteForm, "unrecognized remote URL %q: expected owner/repo path", raw)
	}

	return owner, repo, nil
}
