package katexprobe

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Check that KaTeX is installed and can render math"
	MsgCheckShort      = "Run the KaTeX installation check"
	MsgGuideShort      = "Show the KaTeX renderer integration guide"
	MsgGenConfigShort  = "Print or write the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgRendererWarning = "tex_renderer is set to %q; KaTeX is only used when it is %q"
	MsgConfigWritten   = "Wrote configuration to %s\n"
	MsgManWritten      = "Wrote man pages to %s\n"
	MsgVersionFormat   = "katexprobe %s (commit %s, built %s)\n"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrReadGuide   = "failed to read guide: %w"
	MsgErrWriteConfig = "failed to write configuration: %w"
	MsgErrGenMan      = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v info, -vv debug, -vvv trace)"
	MsgFlagConfig  = "Path to a config file (default $XDG_CONFIG_HOME/katexprobe/config.toml)"
	MsgFlagWrite   = "Write the configuration file instead of printing it"
	MsgFlagForce   = "Overwrite an existing configuration file"
	MsgFlagRaw     = "Print the guide as plain markdown"
	MsgFlagManDir  = "Directory to write man pages into"

	MsgCompletionLong = `Generate the autocompletion script for katexprobe for the specified shell.

To load completions for the current bash session:
  source <(katexprobe completion bash)`
)

// Long descriptions and examples kept in msgs/
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = msgUsageTemplateRaw
)
