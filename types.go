package unusedcss

import (
	"path/filepath"
)

// OutputMode selects how results are rendered
type OutputMode string

const (
	// OutputDefault prints the human-readable summary and the unused list
	OutputDefault OutputMode = ""
	// OutputJSON prints the summary with the unused list as a JSON array
	OutputJSON OutputMode = "json"
	// OutputUnusedOnly prints only a JSON payload (tooling integration)
	OutputUnusedOnly OutputMode = "unusedOnly"
)

// ParseOutputMode resolves a configured mode name.
// Unknown names fall back to OutputDefault.
func ParseOutputMode(name string) OutputMode {
	switch OutputMode(name) {
	case OutputJSON:
		return OutputJSON
	case OutputUnusedOnly:
		return OutputUnusedOnly
	default:
		return OutputDefault
	}
}

// Extensions lists the file extensions (without the leading dot) of each file kind
type Extensions struct {
	CSS    []string // ["css", "scss"]
	Source []string // ["vue", "js", "twig"]
}

// Config holds the resolved configuration for one run
type Config struct {
	CSSDir          string // Root of the style sources
	SrcDir          string // Root of the source files (defaults to CSSDir)
	OutputMode      OutputMode
	ExtendedMode    bool     // Also dump selectors, file lists and config
	IgnoreSelectors []string // Selector names never reported
	IgnoreFiles     []string // Source files excluded from the usage search
	Extensions      Extensions

	SkipComments     bool // Drop /* */ comments from style sources before extraction
	RespectGitignore bool // Skip files matched by a .gitignore at either root
	Verbose          bool // Progress lines on stderr
	UseColors        bool // Style the default summary with terminal colors
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		OutputMode:      OutputDefault,
		IgnoreSelectors: []string{},
		IgnoreFiles:     []string{},
		Extensions: Extensions{
			CSS:    []string{"css", "scss"},
			Source: []string{"vue", "js", "twig"},
		},
	}
}

// FileSet is an ordered list of files found under a root directory
type FileSet struct {
	Root  string   // Absolute, cleaned root directory
	Files []string // Absolute paths in traversal order
}

// Len returns the number of files in the set
func (fs FileSet) Len() int {
	return len(fs.Files)
}

// Relative returns the files as slash-separated paths relative to Root
func (fs FileSet) Relative() []string {
	rel := make([]string, 0, len(fs.Files))
	for _, file := range fs.Files {
		r, err := filepath.Rel(fs.Root, file)
		if err != nil {
			r = file
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

// SelectorSet holds unique selector names (no leading dot) in first-seen order
type SelectorSet []string

// Dotted returns the selectors prefixed with "."
func (s SelectorSet) Dotted() []string {
	dotted := make([]string, 0, len(s))
	for _, name := range s {
		dotted = append(dotted, "."+name)
	}
	return dotted
}

// Result contains everything a run produced
type Result struct {
	Selectors   SelectorSet // Every selector declared in the style sources
	Unused      SelectorSet // Selectors with no textual occurrence in the sources
	StyleFiles  FileSet
	SourceFiles FileSet
	Config      Config
}
