package main

import (
	"github.com/spf13/cobra"
	"os"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand().Execute()))
}

func NewRootCommand() *cobra.Command {
	config, envErr := LoadConfigFromEnv()

	rootCmd := &cobra.Command{
		Use:   "gridcore",
		Short: "Spreadsheet grid core: addressing, focus navigation and edit cascade over HTTP",
		Long: `gridcore keeps a workbook in a bbolt file and serves it over HTTP.
Edits propagate to dependent formula cells, focus moves are pushed over a websocket.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := config.Validate(); err != nil {
				return err
			}
			return RunApp(config)
		},
	}

	config.BindFlags(rootCmd)
	return rootCmd
}
