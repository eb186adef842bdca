package katexprobe

import (
	"fmt"

	"github.com/arthur-debert/katexprobe/internal/version"
	"github.com/arthur-debert/katexprobe/pkg/cobrax/topics"
	"github.com/arthur-debert/katexprobe/pkg/config"
	"github.com/arthur-debert/katexprobe/pkg/guide"
	"github.com/arthur-debert/katexprobe/pkg/katex"
	"github.com/arthur-debert/katexprobe/pkg/logging"
	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/arthur-debert/katexprobe/pkg/ui/console"
	"github.com/arthur-debert/katexprobe/pkg/verifier"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newLoader builds the library loader used by the check
var newLoader = func(s katex.Settings) types.Loader {
	return katex.NewNodeLoader(s)
}

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "katexprobe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		// Extra arguments are accepted and ignored
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   newGuideRenderer(rootCmd.OutOrStdout()),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, guide.FS(), guide.Root, topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgRootLong,
		Args:    cobra.ArbitraryArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
}

// CheckFailedError is returned when the check finished but KaTeX is not
// ready. The result lines have already been printed.
type CheckFailedError struct {
	Status types.Status
	Code   int
}

func (e *CheckFailedError) Error() string {
	return fmt.Sprintf("katex check finished with status %s", e.Status)
}

// ExitCode is the process exit status for the failed check
func (e *CheckFailedError) ExitCode() int {
	return e.Code
}

func runCheck(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := config.Load(config.LoadOptions{Path: opts.configPath})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	printer := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if !cfg.UsesKaTeX() {
		printer.Warn(MsgRendererWarning, cfg.TexRenderer, config.RendererKaTeX)
	}

	loader := newLoader(settingsFromConfig(cfg))
	result := verifier.New(loader, cfg.Katex.Module).Check(cmd.Context())

	log.Debug().
		Str("status", string(result.Status)).
		AnErr("reason", result.Reason).
		Msg("Check finished")

	if err := printer.Print(result); err != nil {
		return err
	}

	if code := verifier.ExitCode(result); code != 0 {
		return &CheckFailedError{Status: result.Status, Code: code}
	}
	return nil
}

func settingsFromConfig(cfg *config.Config) katex.Settings {
	return katex.Settings{
		Binary:        cfg.Node.Binary,
		NpmBinary:     cfg.Node.NpmBinary,
		Module:        cfg.Katex.Module,
		GlobalModules: cfg.Katex.GlobalModules,
		ProbeTimeout:  cfg.Node.ProbeTimeout,
		RenderTimeout: cfg.Node.RenderTimeout,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
