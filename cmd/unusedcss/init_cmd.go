package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default unused_css.json config file",
	Long: `Create an unused_css.json configuration file in the current directory with the default settings.
Run it with: unusedcss unused_css.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(configFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		if err := os.WriteFile(configFileName, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
		return nil
	},
}

const defaultConfig = `{
    "cssDir": "./src/assets",
    "srcDir": "./src",
    "outputMode": null,
    "extendedMode": false,
    "ignoreSelectors": [],
    "ignoreFiles": [],
    "extensions": {
        "css": ["css", "scss"],
        "source": ["vue", "js", "twig"]
    },
    "skipComments": false,
    "respectGitignore": false
}
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
