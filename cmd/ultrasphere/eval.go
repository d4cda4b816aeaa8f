package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ultrasphere/harmonics"
	"github.com/katalvlaran/ultrasphere/tensor"
)

// evalResult is the YAML-facing shape of one evaluation.
type evalResult struct {
	Type   string   `yaml:"type"`
	NEnd   int      `yaml:"n_end"`
	Shape  []int    `yaml:"shape"`
	Values []string `yaml:"values"`
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate one eigenfunction on a batch of angles",
	Long: `eval computes a single evaluator on the given angles and prints the result
grid. Type a yields complex samples over the azimuthal ladder; types b,
bprime and c yield real grids over their quantum-number axes, in surrogate
or true indexing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		typ, _ := flags.GetString("type")
		nEnd, _ := flags.GetInt("n-end")
		angles, _ := flags.GetFloat64Slice("theta")
		sAlpha, _ := flags.GetFloat64("s-alpha")
		sBeta, _ := flags.GetFloat64("s-beta")
		surrogate, _ := flags.GetBool("surrogate")
		negativeM, _ := flags.GetBool("negative-m")
		csPhase, _ := flags.GetBool("condon-shortley-phase")
		fill, _ := flags.GetFloat64("fill")
		output, _ := flags.GetString("output")

		if len(angles) == 0 {
			return fmt.Errorf("at least one --theta angle is required")
		}
		theta, err := tensor.FromSlice(angles, len(angles))
		if err != nil {
			return err
		}

		res := evalResult{Type: typ, NEnd: nEnd}
		switch typ {
		case "a", "A":
			opts := harmonics.TypeAOptions{
				CondonShortleyPhase: csPhase,
				IncludeNegativeM:    negativeM,
			}
			grid, err := harmonics.TypeA[complex128](theta, nEnd, &opts)
			if err != nil {
				return err
			}
			res.Shape = grid.Shape()
			for _, v := range grid.Data() {
				res.Values = append(res.Values, strconv.FormatComplex(v, 'g', 10, 128))
			}
		case "b", "B":
			opts := harmonics.TypeBOptions{
				SurrogateIndex: surrogate,
				NegativeMBeta:  negativeM,
				Fill:           fill,
			}
			grid, err := harmonics.TypeB(theta, nEnd, tensor.Of(sBeta), &opts)
			if err != nil {
				return err
			}
			res.Shape = grid.Shape()
			res.Values = formatFloats(grid.Data())
		case "bprime", "b'", "B'":
			opts := harmonics.TypeBPrimeOptions{
				SurrogateIndex: surrogate,
				NegativeMAlpha: negativeM,
				Fill:           fill,
			}
			grid, err := harmonics.TypeBPrime(theta, nEnd, tensor.Of(sAlpha), &opts)
			if err != nil {
				return err
			}
			res.Shape = grid.Shape()
			res.Values = formatFloats(grid.Data())
		case "c", "C":
			opts := harmonics.TypeCOptions{
				SurrogateIndex: surrogate,
				NegativeMAlpha: negativeM,
				NegativeMBeta:  negativeM,
				Fill:           fill,
			}
			grid, err := harmonics.TypeC(theta, nEnd, tensor.Of(sAlpha), tensor.Of(sBeta), &opts)
			if err != nil {
				return err
			}
			res.Shape = grid.Shape()
			res.Values = formatFloats(grid.Data())
		default:
			return fmt.Errorf("unknown evaluator type %q (want a, b, bprime or c)", typ)
		}

		switch output {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()

			return enc.Encode(res)
		case "table":
			fmt.Fprintf(cmd.OutOrStdout(), "type %s, n_end %d, shape %v\n", res.Type, res.NEnd, tensor.Shape(res.Shape))
			for i, v := range res.Values {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, v)
			}

			return nil
		default:
			return fmt.Errorf("unknown output format %q (want table or yaml)", output)
		}
	},
}

// formatFloats renders a real grid for output.
func formatFloats(data []float64) []string {
	out := make([]string, len(data))
	for i, v := range data {
		out[i] = strconv.FormatFloat(v, 'g', 10, 64)
	}

	return out
}

func init() {
	evalCmd.Flags().String("type", "a", "evaluator type: a, b, bprime or c")
	evalCmd.Flags().Int("n-end", 2, "exclusive quantum-number bound")
	evalCmd.Flags().Float64Slice("theta", nil, "angles to evaluate at (comma-separated)")
	evalCmd.Flags().Float64("s-alpha", 0, "non-leaf descendant count of the alpha subtree")
	evalCmd.Flags().Float64("s-beta", 0, "non-leaf descendant count of the beta subtree")
	evalCmd.Flags().Bool("surrogate", false, "keep surrogate degree indexing (skip the shift to true quantum numbers)")
	evalCmd.Flags().Bool("negative-m", true, "include the mirrored negative-m extension")
	evalCmd.Flags().Bool("condon-shortley-phase", false, "apply the Condon-Shortley phase (type a only)")
	evalCmd.Flags().Float64("fill", 0, "fill value for unreachable quantum-number combinations")
	evalCmd.Flags().String("output", "table", "output format: table or yaml")

	rootCmd.AddCommand(evalCmd)
}
