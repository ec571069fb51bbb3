package bootstrap

import (
	"strconv"
	"time"
	"unicode"

	"github.com/Luna-Klatzer/pybootstrap/pkg/config"
	"github.com/Luna-Klatzer/pybootstrap/pkg/prompt"
)

// Fields holds every value collected for one run: prompted, derived from
// the git remote, or read from the clock. Built once, immutable afterwards.
type Fields struct {
	AuthorName string
	ModuleName string
	ClassName  string
	Library    bool
	Year       string

	// Owner and Repo stay empty when the remote URL was not recognized;
	// the run then continues in degraded mode.
	Owner string
	Repo  string
}

// collectFields runs the prompt sequence. The retry-until-valid loop lives
// inside the prompter; collection only fails when input is closed or the
// human aborts.
func collectFields(p prompt.Prompter, now func() time.Time) (Fields, error) {
	var f Fields

	author, err := p.Prompt(prompt.Field{
		Title:    "Author name",
		Validate: prompt.NonEmpty,
	})
	if err != nil {
		return Fields{}, err
	}
	f.AuthorName = author

	module, err := p.Prompt(prompt.Field{
		Title:    "Module name (lowercase, max 20 chars)",
		Validate: prompt.ModuleName,
	})
	if err != nil {
		return Fields{}, err
	}
	f.ModuleName = module

	class, err := p.Prompt(prompt.Field{
		Title:    "Main class name",
		Default:  capitalize(module),
		Validate: prompt.ClassName,
	})
	if err != nil {
		return Fields{}, err
	}
	f.ClassName = class

	library, err := p.Prompt(prompt.Field{
		Title:    "Is this a library?",
		Default:  "no",
		Validate: prompt.Boolean,
	})
	if err != nil {
		return Fields{}, err
	}
	f.Library, err = prompt.ParseBool(library)
	if err != nil {
		return Fields{}, err
	}

	f.Year = strconv.Itoa(now().Year())
	return f, nil
}

// replacements builds the immutable token mapping consumed by the
// substitution pass. The remote-derived tokens are omitted in degraded
// mode so their placeholders survive for manual substitution.
func replacements(cfg *config.Config, f Fields) map[string]string {
	m := map[string]string{
		cfg.Tokens.Year:   f.Year,
		cfg.Tokens.Author: f.AuthorName,
		cfg.PackageDir:    f.ModuleName,
		cfg.ClassToken:    f.ClassName,
	}
	if f.Owner != "" {
		m[cfg.Tokens.Username] = f.Owner
	}
	if f.Repo != "" {
		m[cfg.Tokens.Repo] = f.Repo
	}
	return m
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
