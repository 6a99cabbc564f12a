package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylec.yaml config file",
	Long:  `Create a .stylec.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylec.yaml"); err == nil && !force {
			return fmt.Errorf(".stylec.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylec.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylec.yaml")
		return nil
	},
}

const defaultConfig = `# stylec configuration
# Docs: https://github.com/yacobolo/stylec

# Shared settings
verbose: false

# Build settings
build:
  source: styles
  include:
    - "**/*.style.yaml"
  out: dist/styles.css
  classmap: dist/classmap.json

# Check settings
check:
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
