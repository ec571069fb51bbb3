// Package substitute performs whole-word placeholder substitution across a
// template repository tree.
package substitute

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

// Replacer substitutes whole-word occurrences of placeholder tokens.
// It is built once from an immutable mapping and is safe to reuse.
type Replacer struct {
	mapping map[string]string
	pattern *regexp.Regexp
}

// NewReplacer compiles a replacer from a token -> value mapping.
// All tokens are combined into a single alternation so the text is scanned
// in one pass: the output of one substitution can never be re-matched by
// another token, and a token embedded inside a longer identifier is left
// untouched.
func NewReplacer(mapping map[string]string) (*Replacer, error) {
	if len(mapping) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "replacement mapping is empty")
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		if k == "" {
			return nil, errors.New(errors.ErrInvalidInput, "replacement mapping contains an empty token")
		}
		keys = append(keys, k)
	}
	// Longest token first so a token that prefixes another cannot win the
	// alternation early.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}

	pattern, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "compiling replacement pattern")
	}

	m := make(map[string]string, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}

	return &Replacer{mapping: m, pattern: pattern}, nil
}

// Apply returns text with every whole-word token occurrence replaced
func (r *Replacer) Apply(text string) string {
	return r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		return r.mapping[match]
	})
}

// Lookup returns the replacement value for an exact token
func (r *Replacer) Lookup(token string) (string, bool) {
	v, ok := r.mapping[token]
	return v, ok
}

// Tokens returns the tokens of the mapping, longest first
func (r *Replacer) Tokens() []string {
	keys := make([]string, 0, len(r.mapping))
	for k := range r.mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
