package harmonics_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/ultrasphere/harmonics"
	"github.com/katalvlaran/ultrasphere/tensor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTypeA
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate the azimuthal ladder at θ = π/2 with nEnd = 2.
//	The signed ladder is ordered m = [0, 1, −1], so the three samples are
//	  e^{0}/√(2π), e^{iπ/2}/√(2π), e^{−iπ/2}/√(2π).
//
// Options:
//   - IncludeNegativeM = true (default) → trailing axis extent 2·nEnd−1
//   - CondonShortleyPhase = false (default)
//
// Complexity: O(batch · nEnd) time, same memory.
//
// ExampleTypeA demonstrates the azimuthal eigenfunction on one angle.
func ExampleTypeA() {
	theta := tensor.Of(math.Pi / 2)
	opts := harmonics.DefaultTypeAOptions()

	res, err := harmonics.TypeA[complex128](theta, 2, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range res.Data() {
		fmt.Printf("m[%d] = %.4f%+.4fi\n", i, real(v), imag(v))
	}
	// Output:
	// m[0] = 0.3989+0.0000i
	// m[1] = 0.0000+0.3989i
	// m[2] = 0.0000-0.3989i
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTypeB
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate the sin-weighted eigenfunction at θ = π/2 with nEnd = 2 and no
//	non-leaf descendants on the β side. In true indexing the (l_β, l) grid
//	is lower-triangular: l < l_β holds the fill value.
//
// Options:
//   - SurrogateIndex = false (default) → trailing axes (l_β, l)
//   - Fill = 0 (default)
//
// Complexity: O(batch · nEnd²) time, same memory.
//
// ExampleTypeB demonstrates the true-index (l_β, l) grid on one angle.
func ExampleTypeB() {
	theta := tensor.Of(math.Pi / 2)

	res, err := harmonics.TypeB(theta, 2, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for lb := 0; lb < 2; lb++ {
		for l := 0; l < 2; l++ {
			v, _ := res.At(lb, l)
			fmt.Printf("f[%d][%d] = %.4f\n", lb, l, v)
		}
	}
	// Output:
	// f[0][0] = 0.7071
	// f[0][1] = 0.0000
	// f[1][0] = 0.0000
	// f[1][1] = 0.8660
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluateNodes
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate every angular node of the S³ decomposition — a type-B root
//	"theta" whose β subtree is the azimuthal node "phi" — in one call.
//	With negative m included the phi ladder has extent 2·nEnd−1 and theta's
//	l_β axis is mirrored to match.
//
// Complexity: O(nodes · batch · nEnd^d) time, one goroutine per node.
//
// ExampleEvaluateNodes demonstrates the whole-tree driver.
func ExampleEvaluateNodes() {
	tree := &harmonics.StaticTree{
		Order: []string{"theta", "phi"},
		Nodes: map[string]harmonics.StaticNode{
			"theta": {Type: harmonics.BranchingB, Beta: "phi"},
			"phi":   {Type: harmonics.BranchingA},
		},
	}
	angles := map[string]*tensor.Dense[float64]{
		"theta": tensor.Of(0.7),
		"phi":   tensor.Of(1.1),
	}

	out, err := harmonics.EvaluateNodes(context.Background(), tree, angles, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("theta:", out["theta"].Shape())
	fmt.Println("phi:  ", out["phi"].Shape())
	// Output:
	// theta: (5, 3)
	// phi:   (5)
}
