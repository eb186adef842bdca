package katexprobe

import (
	"fmt"
	"os"

	"github.com/arthur-debert/katexprobe/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrGenMan, err)
			}

			header := &doc.GenManHeader{
				Title:   "KATEXPROBE",
				Section: "1",
				Source:  "katexprobe " + version.Version,
				Manual:  "katexprobe manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrGenMan, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)

	return cmd
}
