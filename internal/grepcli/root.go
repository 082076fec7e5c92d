package grepcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"minigrep/internal/version"
)

func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <filename>",
		Short: "Print the lines of a file that contain a query string",
		Long: "minigrep prints every line of <filename> containing <query>, with each match highlighted.\n" +
			"Set " + EnvCaseInsensitive + " (any value) or pass -i for case-insensitive matching.",
		Args: queryAndFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}
			cmd.SilenceUsage = true

			if opts.Watch {
				return runWatch(cmd, opts, args[0], args[1])
			}
			return runOnce(cmd, opts, args[0], args[1])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Version = version.String()
	cmd.InitDefaultVersionFlag()
	if f := cmd.Flags().Lookup("version"); f != nil {
		f.Shorthand = "v"
	}

	withOptionsContext(cmd, opts)
	bindFlags(cmd, opts)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		if opts == nil {
			return nil
		}
		if err := opts.resolve(cmd.Flags()); err != nil {
			return err
		}
		return opts.Prepare()
	}

	return cmd
}

func queryAndFileArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("problem parsing arguments: didn't get a query string")
	case 1:
		return fmt.Errorf("problem parsing arguments: didn't get a filename")
	case 2:
		return nil
	default:
		return fmt.Errorf("problem parsing arguments: expected <query> <filename>, got %d arguments", len(args))
	}
}
