package bundle

import "github.com/yacobolo/stylec"

// Config holds bundler configuration.
type Config struct {
	SourceDir    string   // directory holding *.style.yaml manifests
	Includes     []string // glob patterns relative to SourceDir
	OutFile      string   // stylesheet output path
	ClassMapFile string   // class-map JSON output path ("" = skip)
	Verbose      bool     // enable progress logging
}

// Manifest is one parsed component style manifest.
type Manifest struct {
	Path   string // source file, for warnings
	Name   string // component name (manifest "name" key, else file stem)
	Config stylec.ComponentStyleConfig
}

// BuildResult contains bundling stats plus the assembled stylesheet.
type BuildResult struct {
	FilesScanned       int
	ComponentsCompiled int
	BlocksDeduped      int // identical compiled blocks suppressed by the registry
	Stylesheet         string
	ClassMaps          map[string]map[string]string // component name → class map
	Warnings           []string
}

// ScanStats tracks manifest discovery statistics.
type ScanStats struct {
	FilesDiscovered int // total files matched by glob patterns
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // files dropped by gitignore filtering
}

// CheckResult contains stylesheet verification findings.
type CheckResult struct {
	Issues     []Issue
	RuleCount  int            // qualified rules seen
	LayerCount map[string]int // @layer block occurrences by name
	ErrorCount int
}
