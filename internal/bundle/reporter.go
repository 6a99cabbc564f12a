package bundle

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter handles formatting and outputting build and check results.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w.
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: forceColors || shouldUseColors(),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors() bool {
	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintBuildReport outputs a summary of a completed build.
func (r *Reporter) PrintBuildReport(result *BuildResult, outFile string) {
	fmt.Fprintf(r.w, "%s Built %s\n", RenderStyle(StyleGreen, "✓", r.useColors), outFile)
	fmt.Fprintf(r.w, "  Manifests scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "  Components compiled: %d\n", result.ComponentsCompiled)
	if result.BlocksDeduped > 0 {
		fmt.Fprintf(r.w, "  Duplicate blocks suppressed: %d\n", result.BlocksDeduped)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleYellow, "Warnings:", r.useColors))
		for _, w := range result.Warnings {
			fmt.Fprintf(r.w, "  - %s\n", w)
		}
	}
}

// PrintIssues outputs check issues in golangci-lint format, sorted by
// file then line.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		return issues[i].Pos.Line < issues[j].Pos.Line
	})

	for _, issue := range issues {
		// Format: file:line: message (linter)
		location := fmt.Sprintf("%s:%d:", issue.Pos.Filename, issue.Pos.Line)
		fmt.Fprintf(r.w, "%s %s%s\n",
			RenderStyle(StyleCyan, location, r.useColors),
			issue.Text,
			RenderStyle(StyleGray, fmt.Sprintf(" (%s)", issue.FromLinter), r.useColors))
	}
}

// PrintCheckSummary outputs check statistics and the issue count.
func (r *Reporter) PrintCheckSummary(result *CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Rules: %d\n", result.RuleCount)

	if len(result.LayerCount) > 0 {
		names := make([]string, 0, len(result.LayerCount))
		for name := range result.LayerCount {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(r.w, "  @layer %s: %d\n", name, result.LayerCount[name])
		}
	}

	switch {
	case len(result.Issues) == 0:
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleGreen, "No issues found", r.useColors))
	case result.ErrorCount > 0:
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleRed,
			fmt.Sprintf("%s (%d errors)", pluralizeCount(len(result.Issues), "issue", "issues"), result.ErrorCount), r.useColors))
	default:
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleYellow,
			pluralizeCount(len(result.Issues), "issue", "issues"), r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
