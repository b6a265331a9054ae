// dasher is a side-scrolling runner: jump over the nebulae until the finish
// line reaches you.
//
// Usage:
//
//	dasher play              - Race in the terminal
//	dasher window            - Race in a desktop window
//	dasher serve             - Start SSH server for remote play
//	dasher simulate          - Run a race headless and print the outcome
//	dasher config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (default: search ~/.dasher, ./configs)
//	--difficulty <preset> - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - jump the nebulae, reach the finish line",
	Long: `Dasher is a small side-scrolling runner. Nebulae drift towards you;
jump over every one of them until the finish line reaches you.

Available commands:
  play      - Race in your terminal
  window    - Race in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run a race headless
  config    - Print the effective configuration

Examples:
  dasher play
  dasher play --difficulty hard
  dasher window --scale 2
  dasher serve --ssh :2222
  dasher simulate --autopilot=false`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
