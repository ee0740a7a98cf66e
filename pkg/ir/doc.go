// Package ir holds the compiler's intermediate representation: a world of
// stage entities produced by lowering a syntax.Document, plus the directed
// edges between them (spec.md §3, §4.3).
//
// The world is an entity-component store rather than an object hierarchy
// (spec.md §9): every stage, regardless of its surface Kind, is an *Entity
// carrying the components relevant to that kind (CapabilityData, ModelData,
// ProcBlockData, or SinkData), plus the Inputs/Outputs every stage shares.
// This lets later passes (pkg/typecheck, pkg/codegen) iterate uniformly over
// entities without a type switch on every access, the same way a graph
// holding heterogeneous node components indexed by stable string IDs avoids
// an inheritance tree.
//
// Lowering (Lower) is the only place entities and edges are constructed; the
// world is owned by the phase driver (pkg/compiler) for the lifetime of one
// build. Later phases (pkg/typecheck, pkg/codegen) only read it.
package ir
