package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a race would use, after the difficulty preset
is applied, as YAML.

Config search order:
  1. --config <path>
  2. ~/.dasher/dasher.yaml
  3. ./configs/dasher.yaml
  4. Built-in defaults

Examples:
  dasher config
  dasher config --difficulty hard
  dasher config --default > ~/.dasher/dasher.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagShowDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}
	data, err := config.Marshal(sess.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n# difficulty: %s\n", sess.source, sess.preset)
	_, err = out.Write(data)
	return err
}
