package unusedcss

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/unusedcss/internal/report"
)

const separator = "---------------------------------"

// WriteOutput writes the result in the configured output mode.
//
// OutputUnusedOnly writes a single JSON payload and nothing else. The other
// modes write the extended dump (when enabled), the summary block and the
// unused selectors.
func WriteOutput(w io.Writer, result *Result) error {
	switch result.Config.OutputMode {
	case OutputUnusedOnly:
		return writeUnusedOnly(w, result)

	case OutputJSON:
		if result.Config.ExtendedMode {
			if err := writeExtendedJSON(w, result, false); err != nil {
				return err
			}
		}
		writeSummary(w, result)
		if len(result.Unused) == 0 {
			writeAllClear(w, result)
			return nil
		}
		writeUnusedHeader(w, result)
		data, err := report.MarshalIndent(result.Unused.Dotted())
		if err != nil {
			return fmt.Errorf("encode unused selectors: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	default:
		if result.Config.ExtendedMode {
			fmt.Fprintf(w, "%s\n", report.PrintR(buildExtendedDump(result, false)))
		}
		writeSummary(w, result)
		if len(result.Unused) == 0 {
			writeAllClear(w, result)
			return nil
		}
		writeUnusedHeader(w, result)
		for _, class := range result.Unused.Dotted() {
			fmt.Fprintf(w, "  %s\n", class)
		}
		return nil
	}
}

// writeUnusedOnly writes the extended object in extended mode, otherwise the
// bare array of unused selectors without a trailing newline
func writeUnusedOnly(w io.Writer, result *Result) error {
	if result.Config.ExtendedMode {
		return writeExtendedJSON(w, result, true)
	}

	data, err := report.MarshalIndent(result.Unused.Dotted())
	if err != nil {
		return fmt.Errorf("encode unused selectors: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// writeSummary prints the counts block
func writeSummary(w io.Writer, result *Result) {
	useColors := result.Config.UseColors
	label := func(s string) string {
		return report.RenderStyle(report.StyleCyan, s, useColors)
	}
	exts := func(list []string) string {
		return report.RenderStyle(report.StyleGray, "["+strings.Join(list, ", ")+"]", useColors)
	}
	line := report.RenderStyle(report.StyleGray, separator, useColors)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%s   %d\n", label("Selectors total:"), len(result.Selectors))
	fmt.Fprintf(w, "%s      %d\n", label("Unused total:"), len(result.Unused))
	fmt.Fprintf(w, "%s %d %s\n", label("Searched in files:"), result.SourceFiles.Len(), exts(result.Config.Extensions.Source))
	fmt.Fprintf(w, "%s   %d %s\n", label("CSS files total:"), result.StyleFiles.Len(), exts(result.Config.Extensions.CSS))
	fmt.Fprintln(w, line)
}

func writeAllClear(w io.Writer, result *Result) {
	fmt.Fprintln(w, report.RenderStyle(report.StyleGreen, "No unused CSS classes found.", result.Config.UseColors))
}

func writeUnusedHeader(w io.Writer, result *Result) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, report.RenderStyle(report.StyleRed, "Unused CSS classes:", result.Config.UseColors))
}
