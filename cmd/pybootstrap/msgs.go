package pybootstrap

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "One-shot bootstrapper for Python template checkouts"
	MsgRunShort        = "Transform the template checkout into your project"
	MsgVersionShort    = "Print version information"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgGenConfigLong   = "Output the built-in defaults as TOML to stdout, or write them to .pybootstrap.toml in the checkout with -w.\n\nEdit the written file to override file names and tokens for a fork of the template."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrWriteConfig  = "failed to write %s: %w"
	MsgErrRenderConfig = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagWrite   = "Write config to " + configFileFlagHint + " instead of stdout"

	MsgGenConfigExample = `  pybootstrap gen-config              # Output defaults to stdout
  pybootstrap gen-config -w           # Write to ./.pybootstrap.toml`

	MsgRunExample = `  pybootstrap run                     # Bootstrap the current directory
  pybootstrap run ~/src/my-checkout   # Bootstrap another checkout
  pybootstrap run --dry-run           # Preview without touching anything`
)

const configFileFlagHint = ".pybootstrap.toml"

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
