package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	gallery := &galleryOptions{}

	cmd := &cobra.Command{
		Use:           "widgetry",
		Short:         "Widgetry is a terminal widget catalogue with paged scroll containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the gallery
			if len(args) == 0 {
				return runGallery(cmd, flags, gallery)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of the terminal")
	gallery.bind(cmd)

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
