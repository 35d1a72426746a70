package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nao1215/dotnetvuln/internal/config"
)

// Process exit statuses. ExitClean and ExitVulnerable come from the findings
// (see report.ExitCode); exitFailure covers everything else, including input
// that is not a well-formed document.
const exitFailure = 2

// exitError carries a process exit status out of a command.
// When err is nil the status is the result itself and nothing is printed.
type exitError struct {
	code int
	err  error
}

// Error implements the error interface.
func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *exitError) Unwrap() error {
	return e.err
}

// NewRootCmd creates the root command for dotnetvuln.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs(), nil)
}

// newRootCmd creates the root command reading --input files from fs.
// environ replaces the process environment when non-nil.
func newRootCmd(fs afero.Fs, environ map[string]string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotnetvuln",
		Short: "Summarize vulnerable NuGet packages from a dotnet audit report",
		Long: `dotnetvuln reads the output of
'dotnet list package --vulnerable --include-transitive --format json'
from standard input and lists every package with known vulnerabilities.

Exit status:
  0  no vulnerable packages detected
  1  at least one vulnerable package detected
  2  the input could not be parsed, or another error occurred

Examples:
  # Audit the current solution
  dotnet list package --vulnerable --include-transitive --format json | dotnetvuln

  # Read a saved report and render Markdown for a pull request comment
  dotnetvuln --input audit.json --format markdown

Environment:
  DOTNETVULN_INPUT_FORMAT  default for --input-format
  DOTNETVULN_FORMAT        default for --format
  DOTNETVULN_VERBOSE       default for --verbose
  DOTNETVULN_LOG_JSON      default for --log-json`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuditCmd(cmd, fs, environ)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.Flags().StringP("input", "i", "-",
		"Read the audit report from a file instead of standard input")
	cmd.Flags().String("input-format", "json",
		"Input format: json, yaml or auto")
	cmd.Flags().StringP("format", "f", "text",
		"Report format: text, json or markdown")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(execute(NewRootCmd()))
}

// execute runs cmd and maps its result to a process exit status.
// Errors are printed to the command's error stream.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			printError(cmd.ErrOrStderr(), exitErr.err)
		}
		return exitErr.code
	}

	printError(cmd.ErrOrStderr(), err)
	return exitFailure
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", config.AppName, err)
}
