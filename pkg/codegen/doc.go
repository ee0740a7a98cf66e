// Package codegen is the compiler's query engine and file emitter (spec.md
// §5, §7): a Database holds a BuildContext, a set of FeatureFlags, and a
// lowered World, and answers queries about it (proc-block names, node
// inputs/outputs, resolved dependencies). Model file bytes are memoized
// under a content-hashed pkg/cachekey key; the other queries are recomputed
// on each call.
//
// Files() runs the three emitters — the Cargo manifest, the Cargo build
// config, and the generated lib.rs — and returns their contents without
// writing anything to disk; spec.md §7 leaves "where the tree is written"
// to the caller.
package codegen
