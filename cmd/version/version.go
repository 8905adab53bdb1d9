package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/lawbook/internal/rules"
)

// Set at build time with -ldflags "-X github.com/scan-io-git/lawbook/cmd/version.CoreVersion=..."
var (
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions holds version information of the binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
	Rules         int    `json:"rules"`
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:                   "version [--json]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application and the size of the built-in law book",
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersionInfo(cmd.OutOrStdout(), currentVersions(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON.")
	return cmd
}

func currentVersions() Versions {
	golang := GolangVersion
	if golang == "unknown" {
		golang = runtime.Version()
	}
	return Versions{
		Version:       CoreVersion,
		GolangVersion: golang,
		BuildTime:     BuildTime,
		Rules:         rules.Default().Len(),
	}
}

// printVersionInfo prints the version information.
func printVersionInfo(w io.Writer, v Versions, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Fprintf(w, "Core Version: v%s\n", v.Version)
	fmt.Fprintf(w, "Built-in Rules: %d\n", v.Rules)
	fmt.Fprintf(w, "Go Version: %s\n", v.GolangVersion)
	_, err := fmt.Fprintf(w, "Build Time: %s\n", v.BuildTime)
	return err
}
