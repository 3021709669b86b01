package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/tcss/internal/tcss"
)

const defaultConfigPath = ".tcss.yaml"

var k = koanf.New(".")

// flagKeys maps command flags to their config file keys. Flags not listed use
// their own name.
var flagKeys = map[string]string{
	"strict":                "check.strict",
	"verify":                "check.verify",
	"output-format":         "check.output-format",
	"max-issues-per-linter": "check.max-issues-per-linter",
	"max-same-issues":       "check.max-same-issues",
	"print-lines":           "check.print-lines",
	"print-linter-name":     "check.print-linter-name",
	"write":                 "fmt.write",
	"list":                  "fmt.list",
	"format":                "tree.format",
}

func configKey(flag string) string {
	if key, ok := flagKeys[flag]; ok {
		return key
	}
	return flag
}

// topLevelKeys are the config keys that are not command flags mapped through
// flagKeys.
var topLevelKeys = []string{
	"paths", "placeholders", "max-depth", "memoize", "jobs", "timeout",
	"verbose", "quiet", "color",
}

// envKeys maps TCSS_* variable names to config keys. Both "." and "-" become
// "_", so TCSS_MAX_DEPTH reaches max-depth.
var envKeys = func() map[string]string {
	m := make(map[string]string)
	add := func(key string) {
		name := strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		m["TCSS_"+name] = key
	}
	for _, key := range topLevelKeys {
		add(key)
	}
	for _, key := range flagKeys {
		add(key)
	}
	return m
}()

// envKey returns the config key for an environment variable. Unknown names
// fall back to splitting on "_".
func envKey(name string) string {
	if key, ok := envKeys[name]; ok {
		return key
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, "TCSS_")), "_", ".")
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Flags land on their config keys. Explicitly set flags override file and
	// env values; flag defaults only fill keys nothing else set.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if f.Name == "config" {
			return "", nil
		}
		return configKey(f.Name), posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return setupLogger(getBool("verbose", false))
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// TCSS_CHECK_STRICT -> check.strict, TCSS_MAX_DEPTH -> max-depth
	if err := k.Load(env.Provider("TCSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config from koanf state. Positional
// arguments replace the configured paths.
func buildConfig(args []string) tcss.Config {
	paths := args
	if len(paths) == 0 {
		paths = k.Strings("paths")
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	return tcss.Config{
		Paths:              paths,
		Placeholders:       getBool("placeholders", true),
		MaxDepth:           getInt("max-depth", 0),
		Memoize:            getBool("memoize", false),
		Jobs:               getInt("jobs", 0),
		Verbose:            getBool("verbose", false),
		Strict:             getBool("check.strict", false),
		Verify:             getBool("check.verify", false),
		MaxIssuesPerLinter: getInt("check.max-issues-per-linter", 0),
		MaxSameIssues:      getInt("check.max-same-issues", 0),
		PrintIssuedLines:   getBool("check.print-lines", true),
		PrintLinterName:    getBool("check.print-linter-name", true),
		UseColors:          getBool("color", false),
	}
}

// getString returns the value at key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the value at key, or defaultVal when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getDuration returns the value at key, or defaultVal when unset.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	if k.Exists(key) {
		return k.Duration(key)
	}
	return defaultVal
}
