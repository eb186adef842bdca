package katexprobe

import (
	"fmt"

	"github.com/arthur-debert/katexprobe/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{Path: opts.configPath})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			if !write {
				data, err := cfg.MarshalTOML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := cfg.WriteFile(path, force); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
