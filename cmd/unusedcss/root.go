package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/unusedcss"
)

var rootCmd = &cobra.Command{
	Use:   "unusedcss [css_dir|unused_css.json] [src_dir] [key=value...]",
	Short: "Find CSS classes that are declared but never used",
	Long: `Find CSS class selectors declared in style sheets but never referenced in source files.
Detection is textual: a selector counts as used when its name appears anywhere in a
source file, so dynamically built class names are not understood.

The source directory defaults to the CSS directory. Passing a file named
unused_css.json instead configures the whole run from that file.

Overrides can also be given in key=value form:
  unusedcss web/styles web/src outputMode=json ignoreSelectors=active,open`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runFind,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print progress to stderr")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", "", "Config file path (JSON or YAML)")

	f := rootCmd.Flags()
	f.String("output-mode", "", "Output mode: json|unusedOnly (default: summary)")
	f.Bool("extended-mode", false, "Also dump selectors, file lists and config")
	f.StringSlice("ignore-files", nil, "Source files to exclude from the search")
	f.StringSlice("ignore-selectors", nil, "Selectors never reported as unused")
	f.Bool("skip-comments", false, "Ignore selectors inside /* */ comments")
	f.Bool("respect-gitignore", false, "Skip files matched by .gitignore")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd, args); err != nil {
		return err
	}

	config, err := buildConfig()
	if err != nil {
		return err
	}

	result, err := unusedcss.Find(config)
	if err != nil {
		return err
	}

	return unusedcss.WriteOutput(cmd.OutOrStdout(), result)
}
