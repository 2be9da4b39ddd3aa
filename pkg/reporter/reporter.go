// Package reporter renders batch results as per-file status lines,
// optional diffs in check mode, and a final summary.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdfix/internal/ui/pretty"
	"github.com/yaklabco/mdfix/pkg/runner"
)

// defaultDividerWidth is the summary divider width on non-terminal
// writers; on a terminal the divider is clamped to the window.
const defaultDividerWidth = 40

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// Check renders would-be diffs instead of write confirmations.
	Check bool
}

// Reporter writes formatted batch results.
type Reporter struct {
	w      io.Writer
	styles *pretty.Styles
	check  bool
}

// New creates a Reporter for the given options.
func New(opts Options) *Reporter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &Reporter{
		w:      opts.Writer,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		check:  opts.Check,
	}
}

// Report writes one status line per file, diffs in check mode, and the
// aggregate summary.
func (r *Reporter) Report(result *runner.Result) error {
	for _, fo := range result.Files {
		if _, err := fmt.Fprintln(r.w, r.styles.FormatFileOutcome(fo)); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
		if r.check && fo.Outcome != nil && fo.Outcome.Diff != nil {
			if _, err := fmt.Fprint(r.w, r.styles.FormatDiff(fo.Outcome.Diff)); err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}
	}

	divider := r.styles.Dim.Render(strings.Repeat("─", r.dividerWidth()))
	if _, err := fmt.Fprintln(r.w, divider); err != nil {
		return fmt.Errorf("write divider: %w", err)
	}
	if _, err := fmt.Fprint(r.w, r.styles.FormatSummary(result.Stats, r.check)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func (r *Reporter) dividerWidth() int {
	width := defaultDividerWidth
	if f, ok := r.w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
			width = cols
		}
	}
	return width
}
