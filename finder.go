package unusedcss

import (
	"fmt"
	"os"
)

// Find is the main entry point. It collects the style files, extracts their
// selectors, collects the source files and searches them for every selector.
// Each stage runs to completion before the next starts.
func Find(config Config) (*Result, error) {
	srcDir := config.SrcDir
	if srcDir == "" {
		srcDir = config.CSSDir
	}

	// Both roots are validated before any traversal
	cssRoot, err := checkDirectory(config.CSSDir)
	if err != nil {
		return nil, err
	}
	srcRoot, err := checkDirectory(srcDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Config: config}
	result.Config.SrcDir = srcDir

	// 1. Collect style files
	styleFiles, err := collectFiles(cssRoot, config.Extensions.CSS, config.RespectGitignore)
	if err != nil {
		return nil, err
	}
	if styleFiles.Len() == 0 {
		return nil, fmt.Errorf("%w in: %s", ErrNoStyleFiles, config.CSSDir)
	}
	result.StyleFiles = styleFiles
	logf(config, "Found %d CSS files in %s\n", styleFiles.Len(), styleFiles.Root)

	// 2. Extract selectors
	selectors, err := ExtractSelectors(styleFiles, config.SkipComments)
	if err != nil {
		return nil, fmt.Errorf("extract failed: %w", err)
	}
	result.Selectors = selectors
	logf(config, "Extracted %d selectors\n", len(selectors))

	// 3. Collect source files
	sourceFiles, err := collectFiles(srcRoot, config.Extensions.Source, config.RespectGitignore)
	if err != nil {
		return nil, err
	}
	if sourceFiles.Len() == 0 {
		return nil, fmt.Errorf("%w in: %s", ErrNoSourceFiles, srcDir)
	}
	result.SourceFiles = sourceFiles
	logf(config, "Found %d source files in %s\n", sourceFiles.Len(), sourceFiles.Root)

	// 4. Search for usages
	ignore := NewIgnoreSpec(config.IgnoreSelectors, config.IgnoreFiles, sourceFiles.Root)
	unused, err := FindUnused(selectors, sourceFiles, ignore)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.Unused = unused
	logf(config, "%d of %d selectors unused\n", len(unused), len(selectors))

	return result, nil
}

// logf writes a progress line to stderr in verbose mode.
// Stdout is reserved for the report.
func logf(config Config, format string, args ...any) {
	if config.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
