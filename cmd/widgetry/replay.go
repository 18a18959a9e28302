package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetry/internal/replay"
	"github.com/alexisbeaulieu97/widgetry/pkg/diff"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

type replayOptions struct {
	jsonOutput bool
	golden     string
	update     bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted sequence of scroll and page commands headlessly",
		Long: `Replay drives a paged surface through the steps of a YAML script and prints every
page change notification together with the final position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the replay report as JSON")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the report with this file instead of printing it")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden file with the current report")

	return cmd
}

func runReplay(cmd *cobra.Command, root *rootFlags, path string, opts *replayOptions) error {
	s, err := loadSettings(root, "replay", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	script, err := replay.Load(path)
	if err != nil {
		return newCommandError("replay", fmt.Sprintf("loading script %q", path), err, scriptSuggestion(err))
	}

	s.log.Info("replay started", "script", path, "steps", len(script.Steps))
	report, err := replay.Run(cmd.Context(), script, s.log)
	if err != nil {
		return newCommandError("replay", fmt.Sprintf("running script %q", path), err, scriptSuggestion(err))
	}
	s.log.Info("replay finished", "notifications", len(report.Notifications), "frames", report.Frames)

	var buf bytes.Buffer
	if opts.jsonOutput {
		err = renderReplayJSON(&buf, report)
	} else {
		err = renderReplayText(&buf, report)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if opts.golden == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return compareGolden(cmd, opts, buf.Bytes())
}

// compareGolden checks the rendered report against the golden file, or rewrites it when
// --update is set.
func compareGolden(cmd *cobra.Command, opts *replayOptions, report []byte) error {
	out := cmd.OutOrStdout()

	if opts.update {
		if err := os.WriteFile(opts.golden, report, 0o644); err != nil {
			return newCommandError("replay", fmt.Sprintf("writing golden file %q", opts.golden), err, "Check that the directory exists and is writable.")
		}
		fmt.Fprintf(out, "Updated %s\n", opts.golden)
		return nil
	}

	want, err := os.ReadFile(opts.golden)
	if err != nil {
		return newCommandError("replay", fmt.Sprintf("reading golden file %q", opts.golden), err, "Create it with --update.")
	}

	if d := diff.Lines(want, report, opts.golden, "replay"); d != "" {
		fmt.Fprint(out, d)
		return newCommandError("replay", fmt.Sprintf("comparing with %q", opts.golden), errors.New("report differs from golden file"), "Review the diff above and rerun with --update if the change is expected.")
	}

	fmt.Fprintf(out, "Report matches %s\n", opts.golden)
	return nil
}

func renderReplayJSON(out io.Writer, report *replay.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func renderReplayText(out io.Writer, report *replay.Report) error {
	if report.Name != "" {
		fmt.Fprintf(out, "Replay: %s\n", report.Name)
	}
	fmt.Fprintf(out, "Pages:  %d\n\n", report.Pages)

	if len(report.Notifications) == 0 {
		fmt.Fprintln(out, "No page changes.")
	}
	for _, n := range report.Notifications {
		fmt.Fprintf(out, "step %-3d %-17s -> page %d\n", n.Step, n.Op, n.Page)
	}

	final := report.Final
	fmt.Fprintf(out, "\nFinal page:   %d\n", final.Page)
	fmt.Fprintf(out, "Final offset: top=%g left=%g\n", final.Offset.Top, final.Offset.Left)
	fmt.Fprintf(out, "Max extent:   top=%g left=%g\n", final.Extent.MaxTop, final.Extent.MaxLeft)
	if final.Rendered != nil {
		fmt.Fprintf(out, "Rendered:     top=%g left=%g\n", final.Rendered.Top, final.Rendered.Left)
	}
	fmt.Fprintf(out, "Frames:       %d (%s simulated)\n", report.Frames, report.Elapsed)
	return nil
}

func scriptSuggestion(err error) string {
	var stepErr *widgetryerrors.StepError
	if errors.As(err, &stepErr) {
		return fmt.Sprintf("Check step %d (%s) of the script.", stepErr.Index, stepErr.Op)
	}
	return configSuggestion(err)
}
