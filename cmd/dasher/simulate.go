package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/race"
)

var (
	flagDuration  float64
	flagStep      float64
	flagAutopilot bool
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	wonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a race headless and print the outcome",
	Long: `Run a race without any display, using a fixed time step.

With --autopilot (the default) every nebula is jumped at the ideal moment;
without it the runner never jumps.

Examples:
  dasher simulate
  dasher simulate --difficulty hard
  dasher simulate --autopilot=false --duration 5`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagDuration, "duration", 20, "Maximum simulated seconds")
	simulateCmd.Flags().Float64Var(&flagStep, "dt", 1.0/60.0, "Seconds per frame")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Jump automatically")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagStep <= 0 {
		return fmt.Errorf("--dt must be positive, got %v", flagStep)
	}
	if flagDuration < 0 {
		return fmt.Errorf("--duration must not be negative, got %v", flagDuration)
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	pilot := race.Idle
	if flagAutopilot {
		pilot = race.Autopilot
	}

	logger.Debug("simulating", "source", sess.source, "preset", sess.preset, "dt", flagStep, "duration", flagDuration)
	res := race.Simulate(race.New(sess.cfg), flagStep, flagDuration, pilot)
	logger.Info("simulation finished", "outcome", res.State, "frames", res.Frames)

	outcome := res.State.String()
	switch res.State {
	case race.Won:
		outcome = wonStyle.Render(outcome)
	case race.Lost:
		outcome = lostStyle.Render(outcome)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, labelStyle.Render("outcome"), outcome)
	fmt.Fprintln(out, labelStyle.Render("elapsed"), fmt.Sprintf("%.2fs", res.Elapsed))
	fmt.Fprintln(out, labelStyle.Render("frames"), res.Frames)
	fmt.Fprintln(out, labelStyle.Render("collided"), res.Collided)
	return nil
}
