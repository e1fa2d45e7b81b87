package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcblab/internal/ohm"
)

var ohmCmd = &cobra.Command{
	Use:   "ohm <reading>",
	Short: "Solve Ohm's law from two known values",
	Long: `Solve Ohm's law for the missing quantity. Give exactly two of V, I and R:

  pcblab ohm "V=5 I=0.1"
  pcblab ohm V=12 R=220`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOhm,
}

func runOhm(cmd *cobra.Command, args []string) error {
	solution, err := ohm.Calculate(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(solution.String()))
	fmt.Fprintln(out, field("Voltage", fmt.Sprintf("%.3f V", solution.Voltage)))
	fmt.Fprintln(out, field("Current", fmt.Sprintf("%.3f A", solution.Current)))
	fmt.Fprintln(out, field("Resistance", fmt.Sprintf("%.2f Ω", solution.Resistance)))
	fmt.Fprintln(out, field("Power", fmt.Sprintf("%.3f W", solution.Power)))
	return nil
}
