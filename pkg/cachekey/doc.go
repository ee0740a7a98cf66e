// Package cachekey derives deterministic, content-keyed cache keys for the
// codegen query engine (spec.md §4.6, §9).
//
// # Overview
//
// A query in pkg/codegen memoizes its result the first time it is computed
// within a build. The cache key must be a pure function of the query's
// inputs so that rerunning the same build with the same inputs reuses the
// cached value and a changed input invalidates exactly the queries that
// depend on it.
//
// # Derivation
//
// Keys are derived with SHA-256 over the length-prefixed concatenation of
// their parts:
//
//	key = H(len(p0) || p0 || len(p1) || p1 || ...)
//
// The length-prefixed derivation is the same shape used elsewhere to derive
// per-stage sub-seeds (H(masterSeed, stageName, configHash)), turned to a
// new purpose here: instead of seeding a random number generator, the hash
// itself is the cache key, and there is no randomness anywhere in this
// package (the compiler does not perform any form of persistent or
// randomized state).
package cachekey
