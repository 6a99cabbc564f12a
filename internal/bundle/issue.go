package bundle

// Issue represents a single verification finding in golangci-lint format.
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "stylecheck"
	Text       string   `json:"Text"`       // "unbalanced braces: 1 unclosed block"
	Severity   string   `json:"Severity"`   // "warning", "error"
	Pos        IssuePos `json:"Pos"`
}

// IssuePos specifies the location of an issue in the emitted stylesheet.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
}

// Issue severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

const linterName = "stylecheck"
