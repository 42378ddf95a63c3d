package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pidplot/pkg/detector"
	"github.com/ccollicutt/pidplot/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <log-file|glob>...",
		Short: "Check debug logs without plotting",
		Long: `Validate debug logs without writing any image.

For each file:
  - Header and row syntax
  - Numeric values in every column
  - Detected log kind (pid or twiddle)
  - Columns the matching plotter needs but the file lacks

Fails if any file cannot be loaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, global, args)
		},
	}
}

func runValidate(cmd *cobra.Command, global *GlobalOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	log := global.Logger(cmd.ErrOrStderr())

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding paths: %w", err)
	}

	det := detector.New()
	failed := 0

	for _, path := range files {
		_, _ = fmt.Fprintf(out, "Validating %s...\n", path)

		table, err := parser.Load(ctx, path)
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "  Invalid: %v\n\n", err)
			continue
		}
		log.Debug("loaded log", "path", path, "rows", table.Rows())

		_, _ = fmt.Fprintf(out, "  Rows:    %d\n", table.Rows())
		_, _ = fmt.Fprintf(out, "  Columns: %s\n", strings.Join(table.Names(), " "))

		match, ok := det.Detect(table.Names()).Best()
		switch {
		case !ok:
			_, _ = fmt.Fprintf(out, "  Kind:    unknown\n")
		case match.Plottable():
			_, _ = fmt.Fprintf(out, "  Kind:    %s (%.0f%% of columns), plot with 'pidplot %s'\n",
				match.Kind.Name, match.Confidence*100, match.Kind.Name)
		default:
			_, _ = fmt.Fprintf(out, "  Kind:    %s (%.0f%% of columns)\n", match.Kind.Name, match.Confidence*100)
			_, _ = fmt.Fprintf(out, "  Warning: missing required columns: %s\n", strings.Join(match.Missing, ", "))
		}
		_, _ = fmt.Fprintln(out)
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d file(s) could not be loaded", failed, len(files))
	}
	_, _ = fmt.Fprintf(out, "%d file(s) valid\n", len(files))
	return nil
}
