package katexprobe

import (
	"fmt"
	"io"

	"github.com/arthur-debert/katexprobe/pkg/cobrax/topics"
	"github.com/arthur-debert/katexprobe/pkg/guide"
	"github.com/arthur-debert/katexprobe/pkg/ui/console"
	"github.com/spf13/cobra"
)

// newGuideRenderer picks the glamour style for out. Output that is not a
// color terminal gets the notty style.
func newGuideRenderer(out io.Writer) *topics.GlamourRenderer {
	r := topics.NewGlamourRenderer()
	if !console.SupportsColor(out) {
		r.Style = "notty"
	}
	return r
}

func newGuideCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := guide.Content(guide.MainTopic)
			if err != nil {
				return fmt.Errorf(MsgErrReadGuide, err)
			}

			out := cmd.OutOrStdout()
			if raw {
				_, err = fmt.Fprint(out, content)
				return err
			}

			_, err = fmt.Fprint(out, newGuideRenderer(out).Render(content, ".md"))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)

	return cmd
}
