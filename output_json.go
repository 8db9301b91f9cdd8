package unusedcss

import (
	"fmt"
	"io"

	"github.com/yacobolo/unusedcss/internal/report"
)

// buildExtendedDump collects the intermediate sets of a run.
// Keys: selectors, sourceFiles, cssFiles, config and, with withUnused,
// unusedSelectors. File paths are relative to their roots.
func buildExtendedDump(result *Result, withUnused bool) report.Map {
	dump := report.Map{
		{Key: "selectors", Value: result.Selectors.Dotted()},
		{Key: "sourceFiles", Value: result.SourceFiles.Relative()},
		{Key: "cssFiles", Value: result.StyleFiles.Relative()},
		{Key: "config", Value: configDump(result.Config)},
	}
	if withUnused {
		dump = append(dump, report.Entry{Key: "unusedSelectors", Value: result.Unused.Dotted()})
	}
	return dump
}

// configDump lists the effective configuration in a stable key order
func configDump(config Config) report.Map {
	var outputMode any
	if config.OutputMode != OutputDefault {
		outputMode = string(config.OutputMode)
	}

	return report.Map{
		{Key: "cssDir", Value: config.CSSDir},
		{Key: "srcDir", Value: config.SrcDir},
		{Key: "extendedMode", Value: config.ExtendedMode},
		{Key: "outputMode", Value: outputMode},
		{Key: "ignoreSelectors", Value: nonNil(config.IgnoreSelectors)},
		{Key: "ignoreFiles", Value: nonNil(config.IgnoreFiles)},
		{Key: "extensions", Value: report.Map{
			{Key: "css", Value: nonNil(config.Extensions.CSS)},
			{Key: "source", Value: nonNil(config.Extensions.Source)},
		}},
		{Key: "skipComments", Value: config.SkipComments},
		{Key: "respectGitignore", Value: config.RespectGitignore},
	}
}

// writeExtendedJSON writes the extended dump as indented JSON followed by a newline
func writeExtendedJSON(w io.Writer, result *Result, withUnused bool) error {
	data, err := report.MarshalIndent(buildExtendedDump(result, withUnused))
	if err != nil {
		return fmt.Errorf("encode extended output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// nonNil keeps empty lists encoding as [] rather than null
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
