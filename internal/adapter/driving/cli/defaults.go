package cli

import (
	"github.com/spf13/cobra"
)

func (app *CLIApp) newDefaultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the reference scenario as a config file",
		Long:  "Prints every parameter of the reference scenario. Redirect the output to a file,\nedit it and pass it back with --config-file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return app.projectionUseCase.PrintDefaults(format)
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml, toml or json")
	return cmd
}
