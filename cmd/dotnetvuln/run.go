package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nao1215/dotnetvuln/internal/audit"
	"github.com/nao1215/dotnetvuln/internal/config"
	"github.com/nao1215/dotnetvuln/internal/log"
	"github.com/nao1215/dotnetvuln/internal/model"
	"github.com/nao1215/dotnetvuln/internal/parser"
	"github.com/nao1215/dotnetvuln/internal/report"
)

// runAuditCmd reads one audit report, writes the summary to stdout and
// returns an exitError when vulnerable packages were found.
func runAuditCmd(cmd *cobra.Command, fs afero.Fs, environ map[string]string) error {
	cfg, err := buildConfig(cmd, environ)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	input, err := openInput(fs, cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer input.Close()

	doc, err := parser.Decode(input, cfg.InputFormat)
	if err != nil {
		return err
	}
	logProblems(logger, doc.Problems)

	findings := audit.Extract(doc)
	logFindings(logger, doc, findings)

	writer, err := report.NewWriter(cfg.OutputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := writer.Write(findings); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if code := report.ExitCode(findings); code != report.ExitClean {
		return &exitError{code: code}
	}
	return nil
}

// getBoolFlag retrieves a boolean flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) (value, changed bool) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return false, false
	}
	return flag.Value.String() == "true", flag.Changed
}

// buildConfig creates a Config from the environment and cobra command flags.
// Flags take precedence over environment variables only when set explicitly.
func buildConfig(cmd *cobra.Command, environ map[string]string) (*config.Config, error) {
	cfg, err := config.FromEnv(environ)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	input, err := flags.GetString("input")
	if err != nil {
		return nil, fmt.Errorf("failed to get input flag: %w", err)
	}
	cfg.InputPath = input

	if flags.Changed("input-format") {
		inputFormat, err := flags.GetString("input-format")
		if err != nil {
			return nil, fmt.Errorf("failed to get input-format flag: %w", err)
		}
		cfg.InputFormat = parser.Format(strings.ToLower(inputFormat))
	}

	if flags.Changed("format") {
		format, err := flags.GetString("format")
		if err != nil {
			return nil, fmt.Errorf("failed to get format flag: %w", err)
		}
		cfg.OutputFormat = report.Format(strings.ToLower(format))
	}

	if verbose, changed := getBoolFlag(cmd, "verbose"); changed {
		cfg.Verbose = verbose
	}
	if logJSON, changed := getBoolFlag(cmd, "log-json"); changed {
		cfg.LogJSON = logJSON
	}

	return cfg, nil
}

// setupLogger creates the logger for one run. Logs never go to stdout.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// openInput opens the configured audit report.
func openInput(fs afero.Fs, cfg *config.Config, stdin io.Reader) (io.ReadCloser, error) {
	if cfg.ReadsStdin() {
		return io.NopCloser(stdin), nil
	}
	f, err := fs.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// logProblems reports projects dotnet could not audit, typically because
// they were not restored.
func logProblems(logger *slog.Logger, problems []model.Problem) {
	for _, p := range problems {
		logger.Warn("dotnet reported a problem",
			"project", lo.FromPtr(p.Project),
			"level", lo.FromPtr(p.Level),
			"text", lo.FromPtr(p.Text),
		)
	}
}

func logFindings(logger *slog.Logger, doc *model.Document, findings []model.Finding) {
	logger.Debug("audit report decoded",
		"version", lo.FromPtr(doc.Version),
		"projects", len(doc.Projects),
		"vulnerablePackages", len(findings),
	)

	for _, f := range findings {
		for _, adv := range f.Advisories {
			logger.Debug("vulnerable package",
				"project", lo.FromPtr(f.Project),
				"package", lo.FromPtr(f.Package),
				"version", lo.FromPtr(f.Version),
				"group", string(f.Group),
				"severity", adv.Severity.String(),
				"advisory", lo.FromPtr(adv.AdvisoryURL),
			)
		}
	}
}
