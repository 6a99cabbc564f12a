package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylec/internal/bundle"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile style manifests into a stylesheet bundle",
	Long: `Discover *.style.yaml manifests, compile each component's styles,
and write a single cascade-layered stylesheet plus a class-map JSON snapshot.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("source", "styles", "Source directory holding style manifests")
	f.StringSlice("include", nil, "Glob patterns for manifests to include")
	f.String("out", "dist/styles.css", "Stylesheet output path")
	f.String("classmap", "dist/classmap.json", "Class-map JSON output path")
	f.Bool("check", false, "Run the checker after building")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBundleConfig()

	result, err := bundle.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := bundle.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
		reporter.PrintBuildReport(result, config.OutFile)
	}

	// Run check after build if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheckFile(config.OutFile)
	}

	return nil
}
