// Package bootstrap orchestrates the one-shot transformation of a template
// checkout into a personalized project. The flow is strictly linear: any
// failure past the first file mutation leaves the tree partially
// transformed, with git as the safety net.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/Luna-Klatzer/pybootstrap/pkg/config"
	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/gitrepo"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
	"github.com/Luna-Klatzer/pybootstrap/pkg/operations"
	"github.com/Luna-Klatzer/pybootstrap/pkg/pipenv"
	"github.com/Luna-Klatzer/pybootstrap/pkg/prompt"
	"github.com/Luna-Klatzer/pybootstrap/pkg/substitute"
	"github.com/Luna-Klatzer/pybootstrap/pkg/ui/styles"
)

// Options configures one bootstrap run
type Options struct {
	// Root is the checkout to transform
	Root string

	// DryRun previews all mutating operations without executing them
	DryRun bool

	// Prompter collects the user fields; defaults to prompt.New()
	Prompter prompt.Prompter

	// Runner executes external commands; defaults to an ExecRunner
	Runner pipenv.Runner

	// Out receives notices and warnings; defaults to os.Stdout
	Out io.Writer

	// Now supplies the current time; defaults to time.Now
	Now func() time.Time

	// SelfPath is the entry-point artifact deleted before the final
	// commit; defaults to the running executable
	SelfPath string
}

// Run executes the full bootstrap flow against opts.Root
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	logger := logging.GetLogger("bootstrap")

	if opts.Prompter == nil {
		opts.Prompter = prompt.New()
	}
	if opts.Runner == nil {
		opts.Runner = pipenv.NewExecRunner(opts.DryRun)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", opts.Root)
	}

	// The template package directory is the clearest signal of a previous
	// run; refuse early instead of failing halfway through.
	packageDir := filepath.Join(root, cfg.PackageDir)
	if _, err := os.Stat(packageDir); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound,
			"template package %s not found: has this checkout already been bootstrapped?", cfg.PackageDir)
	}

	repo, err := gitrepo.Open(root, opts.DryRun)
	if err != nil {
		return err
	}

	tool := pipenv.New(opts.Runner, root, cfg.Tool.Name, cfg.Tool.InstallCommand)
	if err := tool.EnsureInstalled(ctx); err != nil {
		return err
	}

	fields, err := collectFields(opts.Prompter, opts.Now)
	if err != nil {
		return err
	}
	deriveRemoteFields(cfg, repo, &fields, opts.Out)

	replacer, err := substitute.NewReplacer(replacements(cfg, fields))
	if err != nil {
		return err
	}

	executor := operations.NewExecutor(opts.DryRun)

	if fields.Library {
		if err := deleteLibraryFiles(ctx, executor, cfg, root); err != nil {
			return err
		}
	} else {
		if err := editIgnoreFile(ctx, executor, cfg, root); err != nil {
			return err
		}
	}

	if err := substituteAndRename(ctx, executor, cfg, replacer, root, fields.Library); err != nil {
		return err
	}

	if err := renameTemplateNames(ctx, executor, cfg, root, fields.ModuleName); err != nil {
		return err
	}

	if err := tool.InstallDeps(ctx); err != nil {
		return err
	}
	if err := tool.InstallHooks(ctx); err != nil {
		return err
	}

	if err := deleteSelf(ctx, executor, root, opts.SelfPath); err != nil {
		return err
	}

	if _, err := repo.CommitAll(cfg.CommitMessage); err != nil {
		return err
	}

	logger.Info().Str("module", fields.ModuleName).Bool("library", fields.Library).Msg("Bootstrap complete")
	fmt.Fprintln(opts.Out, styles.Render("Success", "Your project is ready."))
	fmt.Fprintf(opts.Out, "Publish it with %s.\n", styles.Render("Command", "git push"))
	return nil
}

// deriveRemoteFields fills Owner and Repo from the origin remote. An
// unrecognized or missing remote degrades to a warning: the run continues
// and those placeholders must be substituted manually.
func deriveRemoteFields(cfg *config.Config, repo *gitrepo.Repo, fields *Fields, out io.Writer) {
	logger := logging.GetLogger("bootstrap")

	url, err := repo.OriginURL()
	if err == nil {
		var owner, name string
		owner, name, err = gitrepo.ParseRemoteURL(url)
		if err == nil {
			fields.Owner = owner
			fields.Repo = name
			return
		}
	}

	logger.Warn().Err(err).Msg("Could not derive fields from the origin remote")
	pterm.Warning.WithWriter(out).Printfln(
		"Could not parse the origin remote URL; %s and %s were left in place and must be replaced manually.",
		cfg.Tokens.Username, cfg.Tokens.Repo)
}

func deleteLibraryFiles(ctx context.Context, executor *operations.Executor, cfg *config.Config, root string) error {
	ops := make([]operations.Operation, 0, len(cfg.LibraryDeleteFiles))
	for _, name := range cfg.LibraryDeleteFiles {
		ops = append(ops, operations.DeleteFile(
			filepath.Join(root, name),
			fmt.Sprintf("delete %s (library project)", name),
		))
	}
	return executor.Execute(ctx, ops)
}

func editIgnoreFile(ctx context.Context, executor *operations.Executor, cfg *config.Config, root string) error {
	path := filepath.Join(root, cfg.IgnoreFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "reading %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "stating %s", path)
	}

	filtered, err := substitute.FilterLines(string(data), []string{cfg.LockEntry})
	if err != nil {
		return errors.Wrapf(err, errors.GetCode(err), "editing %s", path)
	}

	return executor.Execute(ctx, []operations.Operation{
		operations.WriteFile(path, []byte(filtered), info.Mode().Perm(),
			fmt.Sprintf("drop %s from %s (application project)", cfg.LockEntry, cfg.IgnoreFile)),
	})
}

// substituteAndRename runs the substitution pass over the candidate file
// set and renames any file whose base name matches a token. The candidate
// set is computed once before any mutation.
func substituteAndRename(ctx context.Context, executor *operations.Executor, cfg *config.Config, replacer *substitute.Replacer, root string, library bool) error {
	names := []string{cfg.ManifestFile}
	if !library {
		names = append(names, cfg.ContainerFile)
	}

	candidates, err := substitute.CandidateFiles(root, cfg.Extensions, names)
	if err != nil {
		return err
	}

	var ops []operations.Operation
	for _, path := range candidates {
		content, mode, changed, err := replacer.RewriteContent(path)
		if err != nil {
			return err
		}
		if changed {
			ops = append(ops, operations.WriteFile(path, content, mode,
				fmt.Sprintf("substitute tokens in %s", path)))
		}
		if target, ok := replacer.RenameTarget(path); ok {
			ops = append(ops, operations.Rename(path, target,
				fmt.Sprintf("rename %s to %s", filepath.Base(path), filepath.Base(target))))
		}
	}
	return executor.Execute(ctx, ops)
}

func renameTemplateNames(ctx context.Context, executor *operations.Executor, cfg *config.Config, root, moduleName string) error {
	return executor.Execute(ctx, []operations.Operation{
		operations.Rename(
			filepath.Join(root, cfg.PackageDir),
			filepath.Join(root, moduleName),
			fmt.Sprintf("rename package directory to %s", moduleName),
		),
		operations.Rename(
			filepath.Join(root, cfg.TemplateReadme),
			filepath.Join(root, cfg.FinalReadme),
			fmt.Sprintf("rename %s to %s", cfg.TemplateReadme, cfg.FinalReadme),
		),
	})
}

// deleteSelf removes the entry-point artifact. A binary installed outside
// the checkout is left alone: it is not part of the repository being
// committed.
func deleteSelf(ctx context.Context, executor *operations.Executor, root, selfPath string) error {
	logger := logging.GetLogger("bootstrap")

	path := selfPath
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "locating own executable")
		}
		path = exe
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", path)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		logger.Debug().Str("path", abs).Msg("Entry point lives outside the checkout, leaving it in place")
		return nil
	}

	return executor.Execute(ctx, []operations.Operation{
		operations.DeleteFile(abs, "delete bootstrap entry point"),
	})
}
