// Package resolve implements the dependency resolver (spec.md §4.5): given a
// proc-block's Path and the runefile's current directory, it decides which
// of the four dependency kinds (built-in, local, registry, git) applies and
// returns a concrete Dependency descriptor.
//
// Resolution itself never consults a FeatureFlags override; the override
// mechanism (redirecting first-party dependencies to a local checkout) is
// applied one layer up, in pkg/codegen's manifest emitter, as a Cargo
// `[patch]` table operating on the already-resolved dependency set rather
// than changing resolution itself. See DESIGN.md for this Open Question
// resolution.
package resolve
