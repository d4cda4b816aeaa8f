// Package ultrasphere evaluates orthonormal hyperspherical harmonics over
// the recursive angular decomposition of an n-sphere, from batched array
// kernels up to the per-node eigenfunction evaluators.
//
// 🚀 What is ultrasphere?
//
//	A pure-Go library for the eigenfunctions that arise when an n-sphere is
//	split into a binary tree of coordinate nodes. Each node carries a local
//	angle and one of four branching types (A, B, B′, C) fixing how its
//	eigenfunction couples to its children:
//		• Type A  — azimuthal leaf pair, complex exponential ladder
//		• Type B  — one leaf angle coupled to a subtree (sin weight)
//		• Type B′ — the mirror coupling (cos weight)
//		• Type C  — two subtrees coupled through a half-angle Jacobi ladder
//
// ✨ Why choose ultrasphere?
//
//   - Batched everywhere – leading axes broadcast through every kernel
//   - Exact index bookkeeping – surrogate→true quantum-number reindexing
//     with fill-value truncation, never uninitialized slots
//   - Compute half, mirror the rest – negative magnetic quantum numbers
//     come from a symmetry extension, not recomputation
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized in three subpackages:
//
//	tensor/    — generic dense n-d arrays, broadcasting, shift & symmetry ops
//	jacobi/    — Jacobi polynomial ladder and its normalization constant
//	harmonics/ — branching types, the four evaluators, parameter inference
//
// A small CLI lives in cmd/ultrasphere for quick evaluation from the shell.
//
//	go get github.com/katalvlaran/ultrasphere
package ultrasphere
