// Package config loads the bootstrap configuration: embedded defaults
// layered under an optional .pybootstrap.toml in the repository root.
// The defaults reproduce the template's original bootstrap behavior
// exactly; overriding is for forks of the template that renamed files.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pberrors "github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

// ConfigFileName is the optional per-repository override file
const ConfigFileName = ".pybootstrap.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Tokens names the placeholder tokens substituted across the template
type Tokens struct {
	Year     string `koanf:"year" toml:"year"`
	Author   string `koanf:"author" toml:"author"`
	Username string `koanf:"username" toml:"username"`
	Repo     string `koanf:"repo" toml:"repo"`
}

// Tool describes the dependency-management executable
type Tool struct {
	Name           string `koanf:"name" toml:"name"`
	InstallCommand string `koanf:"install_command" toml:"install_command"`
}

// Config is the immutable configuration record for one bootstrap run.
// It is built once and threaded through the run as a parameter.
type Config struct {
	CommitMessage      string   `koanf:"commit_message" toml:"commit_message"`
	Extensions         []string `koanf:"extensions" toml:"extensions"`
	ManifestFile       string   `koanf:"manifest_file" toml:"manifest_file"`
	ContainerFile      string   `koanf:"container_file" toml:"container_file"`
	LibraryDeleteFiles []string `koanf:"library_delete_files" toml:"library_delete_files"`
	IgnoreFile         string   `koanf:"ignore_file" toml:"ignore_file"`
	LockEntry          string   `koanf:"lock_entry" toml:"lock_entry"`
	PackageDir         string   `koanf:"package_dir" toml:"package_dir"`
	ClassToken         string   `koanf:"class_token" toml:"class_token"`
	TemplateReadme     string   `koanf:"template_readme" toml:"template_readme"`
	FinalReadme        string   `koanf:"final_readme" toml:"final_readme"`
	Tokens             Tokens   `koanf:"tokens" toml:"tokens"`
	Tool               Tool     `koanf:"tool" toml:"tool"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration for the repository at root
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pberrors.Wrap(err, pberrors.ErrConfigLoad, "loading default configuration")
	}

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, pberrors.Wrapf(err, pberrors.ErrConfigParse, "loading %s", path)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, pberrors.Wrap(err, pberrors.ErrConfigParse, "unmarshaling configuration")
	}
	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pberrors.Wrap(err, pberrors.ErrConfigLoad, "loading default configuration")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, pberrors.Wrap(err, pberrors.ErrConfigParse, "unmarshaling configuration")
	}
	return &cfg, nil
}
