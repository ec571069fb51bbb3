package substitute

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
)

// CandidateFiles walks root and returns every file whose extension is in
// exts plus every file whose base name is in names. The .git directory is
// never descended into. The list is computed once and iterated once by the
// caller; order follows the lexical walk order of filepath.WalkDir.
func CandidateFiles(root string, exts []string, names []string) ([]string, error) {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		extSet[e] = true
	}
	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		nameSet[n] = true
	}

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[filepath.Ext(d.Name())] || nameSet[d.Name()] {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "scanning %s for candidate files", root)
	}
	return candidates, nil
}

// RewriteContent reads path and applies the replacer to its whole
// contents. The rewritten contents are returned rather than written so the
// caller can route the write through its operation executor; changed is
// false when no token occurred in the file.
func (r *Replacer) RewriteContent(path string) (content []byte, mode os.FileMode, changed bool, err error) {
	logger := logging.GetLogger("substitute")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, false, errors.Wrapf(err, errors.ErrFileAccess, "reading %s", path)
	}

	replaced := r.Apply(string(data))
	if replaced == string(data) {
		return nil, 0, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, false, errors.Wrapf(err, errors.ErrFileAccess, "stating %s", path)
	}

	logger.Debug().Str("path", path).Msg("Found tokens to substitute")
	return []byte(replaced), info.Mode().Perm(), true, nil
}

// RenameTarget reports where path should be renamed to when its base name,
// minus extension, equals a mapping token. The second return is false when
// no rename applies.
func (r *Replacer) RenameTarget(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	value, ok := r.Lookup(stem)
	if !ok || value == stem {
		return "", false
	}
	return filepath.Join(filepath.Dir(path), value+ext), true
}
