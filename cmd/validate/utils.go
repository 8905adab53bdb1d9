package validate

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/lawbook/internal/ci"
	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/git"
	"github.com/scan-io-git/lawbook/internal/report"
	"github.com/scan-io-git/lawbook/internal/rules"
	"github.com/scan-io-git/lawbook/internal/sarif"
	"github.com/scan-io-git/lawbook/internal/scanner"
	"github.com/scan-io-git/lawbook/pkg/shared/config"
	"github.com/scan-io-git/lawbook/pkg/shared/errors"
	"github.com/scan-io-git/lawbook/pkg/shared/files"
)

const (
	stdinName          = "<stdin>"
	reportNameTemplate = "lawbook-report.%s"
)

var reportExtensions = map[string]string{
	report.FormatText:  "txt",
	report.FormatJSON:  "json",
	report.FormatSARIF: "sarif",
	report.FormatHTML:  "html",
}

// validation is a single run of the validate command.
type validation struct {
	options RunOptionsValidate
	config  *config.Config
	logger  hclog.Logger
	stdin   io.Reader
	stdout  io.Writer
	version string
}

// usageError wraps invalid input into a command error with exit code 1.
func usageError(err error) error {
	return errors.NewCommandError(fmt.Errorf("invalid validate arguments: %w", err), report.ExitViolations)
}

// resolveOptions fills options that were not given on the command line from the configuration.
func resolveOptions(flags *pflag.FlagSet, options *RunOptionsValidate, cfg *config.Config) {
	if flags.Changed("ext") {
		options.Extensions = config.NormalizeExtensions(options.Extensions)
	} else {
		options.Extensions = config.GetExtensions(cfg)
	}
	if !flags.Changed("exclude") {
		options.Exclude = config.GetExclude(cfg)
	}
	if !flags.Changed("threads") {
		options.Threads = config.GetThreads(cfg)
	}
	if !flags.Changed("format") {
		options.Format = config.GetFormat(cfg)
	}
}

// execute scans args, writes the report and turns violations into a silent command error.
func (v *validation) execute(ctx context.Context, args []string) error {
	table, err := rules.FromConfig(v.config)
	if err != nil {
		v.logger.Error("failed to build the rule table", "error", err)
		return errors.NewCommandError(fmt.Errorf("failed to build the rule table: %w", err), report.ExitViolations)
	}

	results, err := v.scan(ctx, table, args)
	if err != nil {
		v.logger.Error("scan failed", "error", err)
		return usageError(err)
	}

	if v.options.Baseline != "" {
		baseline, err := sarif.ReadReport(v.options.Baseline)
		if err != nil {
			v.logger.Error("failed to read baseline", "path", v.options.Baseline, "error", err)
			return usageError(err)
		}
		var diff findings.BaselineDiff
		results, diff = findings.FilterBaseline(results, baseline.Baseline())
		v.logger.Info("baseline applied",
			"path", v.options.Baseline,
			"recorded", baseline.CollectCategoryInfo()["total"],
			"suppressed", diff.Suppressed,
			"fixed", len(diff.Fixed),
		)
	}

	if err := v.writeReport(results, table, args); err != nil {
		v.logger.Error("failed to write report", "error", err)
		return errors.NewCommandError(fmt.Errorf("failed to write report: %w", err), report.ExitViolations)
	}

	summary := findings.Summarize(results)
	v.logger.Info("validate command completed",
		"files", summary.Files,
		"violations", summary.Violations,
		"skipped", summary.Skipped,
	)

	if code := report.ExitCode(results); code != report.ExitOK {
		return errors.NewSilentCommandError(errors.ErrViolationsFound, code)
	}
	return nil
}

func (v *validation) scan(ctx context.Context, table *rules.Table, args []string) ([]findings.ScanResult, error) {
	s := scanner.New(table, scanner.Options{
		Extensions:  v.options.Extensions,
		Exclude:     v.options.Exclude,
		Threads:     v.options.Threads,
		MaxFileSize: config.GetMaxFileSize(v.config),
		Changed:     v.options.Changed,
	}, v.logger)

	if len(args) == 1 && args[0] == stdinArg {
		name := config.SetThen(v.options.StdinFilename, stdinName)
		result, err := s.ScanReader(name, v.stdin)
		if err != nil {
			return nil, err
		}
		return []findings.ScanResult{result}, nil
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := files.ExpandPath(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to expand path %q: %w", arg, err)
		}
		paths = append(paths, path)
	}
	return s.ScanPaths(ctx, paths)
}

func (v *validation) writeReport(results []findings.ScanResult, table *rules.Table, args []string) error {
	opts := report.Options{
		Format:  v.options.Format,
		Rules:   table,
		Version: v.version,
	}
	if opts.Format == report.FormatSARIF {
		opts.Provenance = v.provenance(args)
	}

	if v.options.OutputPath == "" {
		opts.Color = !v.options.NoColor && !color.NoColor
		return report.Write(v.stdout, results, opts)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, results, opts); err != nil {
		return err
	}

	outputFile, _, err := files.DetermineFileFullPath(v.options.OutputPath, fmt.Sprintf(reportNameTemplate, reportExtensions[opts.Format]))
	if err != nil {
		return err
	}
	if err := files.WriteFile(outputFile, buf.Bytes()); err != nil {
		return err
	}
	v.logger.Info("report saved", "path", outputFile, "format", opts.Format)
	return nil
}

// provenance prefers the CI environment and falls back to the repository enclosing the first target.
func (v *validation) provenance(args []string) *report.Provenance {
	if env, ok := ci.Detect(); ok {
		v.logger.Debug("provenance from CI environment", "ci", env.Kind.String(), "revision", env.CommitHash)
		return &report.Provenance{RepositoryURL: env.RepositoryURL, Revision: env.CommitHash, Branch: env.Branch}
	}
	if len(args) == 0 || args[0] == stdinArg {
		return nil
	}

	p, err := git.ReadProvenance(args[0])
	if err != nil {
		v.logger.Debug("no repository provenance", "path", args[0], "error", err)
		return nil
	}
	return &report.Provenance{RepositoryURL: p.RepositoryURL, Revision: p.Revision, Branch: p.Branch}
}
