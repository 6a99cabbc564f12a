package bundle

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/stylec"
)

// knownLayers is the set of cascade layer names the bundler may emit.
var knownLayers = func() map[string]bool {
	m := make(map[string]bool, len(stylec.LayerOrder))
	for _, l := range stylec.LayerOrder {
		m[string(l)] = true
	}
	return m
}()

// CheckFile verifies a built stylesheet on disk.
func CheckFile(path string) (*CheckResult, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return CheckCSS(string(content), path), nil
}

// CheckCSS tokenizes stylesheet text and reports structural defects:
// unbalanced braces, cascade layers outside the recognized five, and empty
// rule blocks. It does not validate properties or values — malformed
// declarations degrade silently in the browser and are out of scope here.
func CheckCSS(content, filename string) *CheckResult {
	result := &CheckResult{
		LayerCount: make(map[string]int),
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	line := 1
	depth := 0
	preludeHasAt := false
	lastWasOpen := false

	addIssue := func(severity, text string) {
		result.Issues = append(result.Issues, Issue{
			FromLinter: linterName,
			Text:       text,
			Severity:   severity,
			Pos:        IssuePos{Filename: filename, Line: line},
		})
		if severity == SeverityError {
			result.ErrorCount++
		}
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		// Track @layer declarations
		if tt == css.AtKeywordToken && string(text) == "@layer" {
			line += checkLayerNames(lexer, &depth, addIssue, result.LayerCount)
			preludeHasAt = false
			lastWasOpen = false
			continue
		}

		switch tt {
		case css.AtKeywordToken:
			preludeHasAt = true
		case css.LeftBraceToken:
			depth++
			if !preludeHasAt {
				result.RuleCount++
			}
			preludeHasAt = false
			lastWasOpen = true
			continue
		case css.RightBraceToken:
			if lastWasOpen {
				addIssue(SeverityWarning, "empty rule block")
			}
			depth--
			if depth < 0 {
				addIssue(SeverityError, "unexpected closing brace")
				depth = 0
			}
			lastWasOpen = false
			continue
		case css.SemicolonToken:
			preludeHasAt = false
		}

		if tt != css.WhitespaceToken {
			lastWasOpen = false
		}
		line += strings.Count(string(text), "\n")
	}

	if depth > 0 {
		addIssue(SeverityError, fmt.Sprintf("unbalanced braces: %d unclosed block(s)", depth))
	}

	return result
}

// checkLayerNames consumes a @layer prelude — either a block open or an
// ordering statement — validating every named layer. Returns the newline
// count consumed so the caller's line tracking stays accurate.
func checkLayerNames(lexer *css.Lexer, depth *int, addIssue func(severity, text string), counts map[string]int) int {
	lines := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return lines
		}
		lines += strings.Count(string(text), "\n")

		if tt == css.IdentToken {
			name := string(text)
			counts[name]++
			if !knownLayers[name] {
				addIssue(SeverityWarning, fmt.Sprintf("unknown cascade layer %q", name))
			}
		}

		if tt == css.LeftBraceToken {
			// @layer name { ... }
			*depth++
			return lines
		}
		if tt == css.SemicolonToken {
			// @layer name1, name2;
			return lines
		}
	}
}
