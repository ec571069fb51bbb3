package substitute

import (
	"strings"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

// FilterLines returns content with every line exactly equal to one of
// remove omitted, then all trailing blank lines stripped. Lines are
// compared with their terminator normalized away, so "B" removes "B\n"
// and "B\r\n" alike. The result must not end up empty: stripping trailing
// blanks assumes at least one line remains.
func FilterLines(content string, remove []string) (string, error) {
	removeSet := make(map[string]bool, len(remove))
	for _, l := range remove {
		removeSet[l] = true
	}

	lines := strings.Split(content, "\n")
	// a trailing terminator produces one empty trailing element
	if strings.HasSuffix(content, "\n") {
		lines = lines[:len(lines)-1]
	}

	kept := lines[:0]
	for _, line := range lines {
		if removeSet[strings.TrimSuffix(line, "\r")] {
			continue
		}
		kept = append(kept, line)
	}

	// strip trailing blank lines
	for len(kept) > 0 && strings.TrimRight(kept[len(kept)-1], "\r") == "" {
		kept = kept[:len(kept)-1]
	}

	if len(kept) == 0 {
		return "", errors.New(errors.ErrFileEmpty, "no lines left after filtering")
	}

	return strings.Join(kept, "\n") + "\n", nil
}
