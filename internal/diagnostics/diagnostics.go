// Package diagnostics renders translation progress and results to the
// terminal. Adapted from demo/cmd/main.go's color palette and
// Printf-based reporting style — no table/TUI library, just colored
// one-line messages to match the teacher's CLI texture.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// Reporter writes colorized diagnostics for one translation run.
type Reporter struct {
	out     io.Writer
	err     io.Writer
	verbose bool

	ok     int
	failed int
}

func New(verbose bool) *Reporter {
	return &Reporter{out: os.Stdout, err: os.Stderr, verbose: verbose}
}

// Info reports routine progress; suppressed unless verbose.
func (r *Reporter) Info(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", blue("→"), fmt.Sprintf(format, args...))
}

// Success reports one file's successful translation.
func (r *Reporter) Success(sourceFile string, artifacts int) {
	r.ok++
	fmt.Fprintf(r.out, "%s %s %s\n", green("✓"), sourceFile, yellow(fmt.Sprintf("(%d files emitted)", artifacts)))
}

// Failure reports one file's translation failure.
func (r *Reporter) Failure(sourceFile string, err error) {
	r.failed++
	fmt.Fprintf(r.err, "%s %s: %v\n", red("✗"), sourceFile, err)
}

// Warn reports a non-fatal condition, e.g. an unsupported construct
// lowered to a placeholder.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.err, "%s %s\n", yellow("!"), fmt.Sprintf(format, args...))
}

// Summary prints the run totals and returns the process exit code:
// 0 if nothing failed, 1 otherwise.
func (r *Reporter) Summary(seen int) int {
	fmt.Fprintf(r.out, "\n%s %s\n", bold("sol2ink"), fmt.Sprintf("%d seen, %s, %s", seen, green(fmt.Sprintf("%d ok", r.ok)), colorCount(r.failed)))
	if r.failed > 0 {
		return 1
	}
	return 0
}

func colorCount(failed int) string {
	if failed == 0 {
		return green("0 failed")
	}
	return red(fmt.Sprintf("%d failed", failed))
}

// Section prints a bold banner line, used to delimit batch start/end.
func (r *Reporter) Section(title string) {
	fmt.Fprintf(r.out, "%s %s\n", cyan("▶"), bold(title))
}

// Diff prints a unified diff preview for one artifact that --dry-run
// would (re)write, suppressed unless verbose: re-running over a
// workspace that already has prior output is the common case, and the
// full diff is only interesting when asked for.
func (r *Reporter) Diff(outPath, diff string) {
	if diff == "" {
		return
	}
	if !r.verbose {
		fmt.Fprintf(r.out, "%s %s %s\n", yellow("~"), outPath, "(would change, rerun with --verbose to see diff)")
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", yellow("~"), outPath)
	fmt.Fprint(r.out, diff)
}
