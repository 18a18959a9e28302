package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/widgetry/internal/tui/gallery"
)

type galleryOptions struct {
	touch bool
}

func (o *galleryOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.touch, "touch", false, "Enable mouse wheel scrolling")
}

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newGalleryCmd(root *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the widget gallery",
		Long:  `Launch the interactive gallery. Each tab hosts one scroll container driven through its handle.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, root, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runGallery(cmd *cobra.Command, root *rootFlags, opts *galleryOptions) error {
	if !isTerminal() {
		return newCommandError("start gallery", "checking the terminal", errors.New("stdout is not a terminal"), "Run 'widgetry replay <script>' for headless use.")
	}

	// Bubble Tea owns the terminal, so logs only go to a file.
	s, err := loadSettings(root, "start gallery", nil)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := *s.cfg
	cfg.Touch = cfg.Touch || opts.touch

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		s.log.Info("launching gallery", "width", width, "height", height, "touch", cfg.Touch, "theme", cfg.Theme)
	}

	m, err := gallery.NewModel(gallery.OptionsFromConfig(cfg, s.log))
	if err != nil {
		return newCommandError("start gallery", "building demos", err, "Check the theme and scroll settings in your configuration.")
	}
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())}
	if cfg.Touch {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		s.log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	s.log.Info("gallery closed")
	return nil
}
