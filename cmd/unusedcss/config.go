package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/unusedcss"
	"github.com/yacobolo/unusedcss/internal/report"
)

// configFileName is the suffix that switches a run to config-file mode
const configFileName = "unused_css.json"

var k = koanf.New(".")

// overrideKeys maps the discrete override flags to their config keys
var overrideKeys = map[string]string{
	"output-mode":       "outputMode",
	"extended-mode":     "extendedMode",
	"ignore-files":      "ignoreFiles",
	"ignore-selectors":  "ignoreSelectors",
	"skip-comments":     "skipComments",
	"respect-gitignore": "respectGitignore",
}

// displayKeys maps flags that only affect presentation. They apply in every mode.
var displayKeys = map[string]string{
	"verbose": "verbose",
	"color":   "color",
}

// envKeys maps UNUSEDCSS_* variables (prefix stripped) to config keys
var envKeys = map[string]string{
	"OUTPUT_MODE":       "outputMode",
	"EXTENDED_MODE":     "extendedMode",
	"IGNORE_FILES":      "ignoreFiles",
	"IGNORE_SELECTORS":  "ignoreSelectors",
	"SKIP_COMMENTS":     "skipComments",
	"RESPECT_GITIGNORE": "respectGitignore",
}

// defaultValues is the lowest configuration layer
func defaultValues() map[string]interface{} {
	defaults := unusedcss.DefaultConfig()
	return map[string]interface{}{
		"outputMode":      string(defaults.OutputMode),
		"extendedMode":    defaults.ExtendedMode,
		"ignoreSelectors": defaults.IgnoreSelectors,
		"ignoreFiles":     defaults.IgnoreFiles,
		"extensions": map[string]interface{}{
			"css":    defaults.Extensions.CSS,
			"source": defaults.Extensions.Source,
		},
		"skipComments":     defaults.SkipComments,
		"respectGitignore": defaults.RespectGitignore,
	}
}

// isConfigFile reports whether arg names a config file rather than a directory
func isConfigFile(arg string) bool {
	return strings.HasSuffix(arg, configFileName) ||
		strings.HasSuffix(arg, "unused_css.yaml") ||
		strings.HasSuffix(arg, "unused_css.yml")
}

// loadConfig loads configuration with precedence: flags > key=value args >
// env > --config file > defaults. Maps merge key by key, lists are replaced.
//
// When the first positional argument is an unused_css.json file, that file
// configures the whole run and env, key=value args and override flags are
// not applied.
func loadConfig(cmd *cobra.Command, args []string) error {
	k = koanf.New(".")
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return fmt.Errorf("loading defaults: %w", err)
	}

	roots, assignments := splitArgs(args)

	if len(roots) > 0 && isConfigFile(roots[0]) {
		if err := loadConfigFromPath(roots[0]); err != nil {
			return err
		}
		return loadFlags(cmd.Flags(), displayKeys)
	}

	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		if err := loadConfigFromPath(configPath); err != nil {
			return err
		}
	}

	if err := loadEnv(); err != nil {
		return err
	}

	// Positional roots: style root, then source root
	positional := map[string]interface{}{}
	if len(roots) > 0 {
		positional["cssDir"] = roots[0]
	}
	if len(roots) > 1 {
		positional["srcDir"] = roots[1]
	}
	for key, value := range assignments {
		positional[key] = value
	}
	if err := k.Load(confmap.Provider(positional, "."), nil); err != nil {
		return fmt.Errorf("loading arguments: %w", err)
	}

	merged := make(map[string]string, len(overrideKeys)+len(displayKeys))
	for name, key := range overrideKeys {
		merged[name] = key
	}
	for name, key := range displayKeys {
		merged[name] = key
	}
	return loadFlags(cmd.Flags(), merged)
}

// loadConfigFromPath parses a JSON (or YAML) config file into k.
// Any read or decode failure wraps unusedcss.ErrConfigParse.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err != nil {
		return fmt.Errorf("%w: %s: %v", unusedcss.ErrConfigParse, configPath, err)
	}

	var parser koanf.Parser = json.Parser()
	switch filepath.Ext(configPath) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(configPath), parser); err != nil {
		return fmt.Errorf("%w: loading config file %s: %v", unusedcss.ErrConfigParse, configPath, err)
	}
	return nil
}

// loadEnv loads UNUSEDCSS_* variables
func loadEnv() error {
	if err := k.Load(env.Provider("UNUSEDCSS_", ".", func(s string) string {
		// UNUSEDCSS_OUTPUT_MODE -> outputMode
		// Unknown variables map to "" and are skipped
		return envKeys[strings.TrimPrefix(s, "UNUSEDCSS_")]
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// loadFlags loads the explicitly set flags named in keys
func loadFlags(flags *pflag.FlagSet, keys map[string]string) error {
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := keys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// splitArgs separates positional roots from key=value overrides.
// Only known config keys are accepted as overrides.
func splitArgs(args []string) (roots []string, assignments map[string]string) {
	assignments = make(map[string]string)
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if found && isOverrideKey(key) {
			assignments[key] = value
			continue
		}
		roots = append(roots, arg)
	}
	return roots, assignments
}

func isOverrideKey(key string) bool {
	for _, known := range overrideKeys {
		if known == key {
			return true
		}
	}
	return false
}

// buildConfig constructs the library's Config struct from koanf state
func buildConfig() (unusedcss.Config, error) {
	config := unusedcss.Config{
		CSSDir:          k.String("cssDir"),
		SrcDir:          k.String("srcDir"),
		OutputMode:      unusedcss.ParseOutputMode(k.String("outputMode")),
		ExtendedMode:    isTrue(k.Get("extendedMode")),
		IgnoreSelectors: stringList("ignoreSelectors"),
		IgnoreFiles:     stringList("ignoreFiles"),
		Extensions: unusedcss.Extensions{
			CSS:    stringList("extensions.css"),
			Source: stringList("extensions.source"),
		},
		SkipComments:     k.Bool("skipComments"),
		RespectGitignore: k.Bool("respectGitignore"),
		Verbose:          k.Bool("verbose"),
		UseColors:        report.ShouldUseColors(k.Bool("color")),
	}

	if config.CSSDir == "" {
		return config, errors.New("no CSS directory given")
	}
	if config.SrcDir == "" {
		config.SrcDir = config.CSSDir
	}

	return config, nil
}

// isTrue decides extended mode: a boolean true or the literal string "true"
func isTrue(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}

// stringList reads a list key. Strings are split on commas, so
// "a, b" and ["a", "b"] are equivalent.
func stringList(key string) []string {
	switch val := k.Get(key).(type) {
	case nil:
		return []string{}
	case string:
		return parseList(val)
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return parseList(fmt.Sprint(val))
	}
}

// parseList splits comma-separated values into a slice
func parseList(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
