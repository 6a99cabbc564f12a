package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylec/internal/bundle"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify a built stylesheet",
	Long: `Tokenize a built stylesheet and report structural defects:
unbalanced braces, unknown cascade layers, and empty rule blocks.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		path := getStringWithFallback("out", "build.out", "dist/styles.css")
		if len(args) == 1 {
			path = args[0]
		}
		return runCheckFile(path)
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Exit 1 on any issue (CI mode)")
}

// runCheckFile is shared between `stylec check` and `stylec build --check`.
func runCheckFile(path string) error {
	result, err := bundle.CheckFile(path)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := bundle.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
		reporter.PrintIssues(result.Issues)
		reporter.PrintCheckSummary(result)
	}

	// Soft gate: only errors fail the build unless strict mode is on.
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict && len(result.Issues) > 0 {
		os.Exit(1)
	}
	if result.ErrorCount > 0 {
		os.Exit(1)
	}

	return nil
}
