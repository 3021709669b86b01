package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigPath + " config file",
	Long:  `Create a ` + defaultConfigPath + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created "+defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# tcss configuration
# Docs: https://github.com/yacobolo/tcss

# Shared settings
paths:
  - "."
placeholders: true       # ${kind:name} markers become embedded values
max-depth: 0             # 0 = parser default
memoize: false
jobs: 0                  # 0 = GOMAXPROCS
verbose: false

# Checking settings
check:
  strict: false
  verify: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Tree dumps
tree:
  format: json             # json | yaml
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
