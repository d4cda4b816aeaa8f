package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ultrasphere/harmonics"
)

var ndimCmd = &cobra.Command{
	Use:   "ndim [type]",
	Short: "Report the quantum-number arity of a branching type",
	Long: `ndim prints how many quantum-number axes the eigenfunction of a branching
type carries: 1 for a, 2 for b and bprime, 3 for c. Without an argument it
prints the whole table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			bt, err := parseBranchingType(args[0])
			if err != nil {
				return err
			}
			n, err := harmonics.NDimHarmonics(bt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		}

		for _, bt := range []harmonics.BranchingType{
			harmonics.BranchingA,
			harmonics.BranchingB,
			harmonics.BranchingBPrime,
			harmonics.BranchingC,
		} {
			n, err := harmonics.NDimHarmonics(bt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-3s %d\n", bt, n)
		}

		return nil
	},
}

// parseBranchingType maps the CLI spelling of a branching type onto the
// enumeration.
func parseBranchingType(s string) (harmonics.BranchingType, error) {
	switch s {
	case "a", "A":
		return harmonics.BranchingA, nil
	case "b", "B":
		return harmonics.BranchingB, nil
	case "bprime", "b'", "B'":
		return harmonics.BranchingBPrime, nil
	case "c", "C":
		return harmonics.BranchingC, nil
	default:
		return 0, fmt.Errorf("unknown branching type %q (want a, b, bprime or c)", s)
	}
}

func init() {
	rootCmd.AddCommand(ndimCmd)
}
