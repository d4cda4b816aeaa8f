package harmonics

import "fmt"

// BranchingType classifies a coordinate-tree node and fixes the functional
// form of its eigenfunction together with the arity of its quantum-number
// index. The enumeration is closed: the four variants are fixed by the
// mathematics and will not grow.
type BranchingType uint8

const (
	// BranchingA is a pure azimuthal leaf pair (1 quantum-number axis).
	BranchingA BranchingType = iota

	// BranchingB couples one leaf angle to a subtree through a sin weight
	// (2 quantum-number axes).
	BranchingB

	// BranchingBPrime is the mirror coupling with a cos weight
	// (2 quantum-number axes).
	BranchingBPrime

	// BranchingC couples two subtrees (3 quantum-number axes).
	BranchingC
)

// String implements fmt.Stringer.
func (t BranchingType) String() string {
	switch t {
	case BranchingA:
		return "A"
	case BranchingB:
		return "B"
	case BranchingBPrime:
		return "B'"
	case BranchingC:
		return "C"
	default:
		return fmt.Sprintf("BranchingType(%d)", uint8(t))
	}
}

// Coordinates is the opaque coordinate-tree collaborator: the harmonic
// core never builds or walks trees itself, it only asks which angular
// nodes exist and how each one branches.
type Coordinates interface {
	// AngularNodes returns the angular (spherical) node names in the
	// tree's canonical order.
	AngularNodes() []string

	// BranchingTypeOf reports the branching type of the given node.
	BranchingTypeOf(node string) (BranchingType, error)
}

// Tree extends Coordinates with the per-node child information the
// evaluators need: child identities (for negative-m mirroring decisions)
// and non-leaf descendant counts (the half-integer Jacobi weight shifts).
type Tree interface {
	Coordinates

	// Children returns the angular child node names of the given node.
	// An empty name means the corresponding child subtree carries no
	// angular node of its own.
	Children(node string) (alpha, beta string, err error)

	// NonLeafCounts returns the number of non-leaf descendants of each
	// child subtree of the given node.
	NonLeafCounts(node string) (sAlpha, sBeta int, err error)
}

// StaticNode describes one angular node of a StaticTree.
type StaticNode struct {
	// Type is the node's branching type.
	Type BranchingType

	// Alpha and Beta name the angular child nodes; empty when the child
	// subtree has no angular node.
	Alpha, Beta string

	// SAlpha and SBeta count the non-leaf descendants of each child
	// subtree.
	SAlpha, SBeta int
}

// StaticTree is a value-level Tree: callers assemble the decomposition by
// hand (or with an external builder) and hand it to the evaluators. It
// performs no construction logic of its own.
type StaticTree struct {
	// Order lists the angular node names in canonical order.
	Order []string

	// Nodes maps each angular node name to its description.
	Nodes map[string]StaticNode
}

// AngularNodes implements Coordinates.
func (t *StaticTree) AngularNodes() []string {
	out := make([]string, len(t.Order))
	copy(out, t.Order)

	return out
}

// BranchingTypeOf implements Coordinates.
func (t *StaticTree) BranchingTypeOf(node string) (BranchingType, error) {
	n, ok := t.Nodes[node]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingNode, node)
	}

	return n.Type, nil
}

// Children implements Tree.
func (t *StaticTree) Children(node string) (string, string, error) {
	n, ok := t.Nodes[node]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrMissingNode, node)
	}

	return n.Alpha, n.Beta, nil
}

// NonLeafCounts implements Tree.
func (t *StaticTree) NonLeafCounts(node string) (int, int, error) {
	n, ok := t.Nodes[node]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingNode, node)
	}

	return n.SAlpha, n.SBeta, nil
}
