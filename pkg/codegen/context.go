package codegen

import "github.com/hotg-ai/rune-compiler/pkg/cachekey"

// Verbosity controls how much the driver logs while running a build.
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// BuildContext is the top-level query input every other query derives from
// (spec.md §4.6: `build_context()`).
type BuildContext struct {
	Name string

	// Runefile is the literal YAML source text (spec.md §3: "runefile
	// text"), not a path. Reading it from wherever the caller keeps it is
	// the caller's job (spec.md §1 lists "file I/O conveniences" among the
	// core's explicit non-goals); the compiler only ever parses this
	// string.
	Runefile         string
	WorkingDirectory string
	CurrentDirectory string
	Optimized        bool
	Verbosity        Verbosity
}

// Hash derives a cachekey.Key from every field that affects a build's
// output, so two BuildContexts producing the same emitted files hash
// identically regardless of Verbosity (which only affects logging).
func (c BuildContext) Hash() cachekey.Key {
	optimized := "0"
	if c.Optimized {
		optimized = "1"
	}
	return cachekey.Derive(c.Name, c.Runefile, c.WorkingDirectory, c.CurrentDirectory, optimized)
}

// FeatureFlags carries the override map spec.md §4.5 describes: a
// first-party dependency may be redirected to a local checkout.
type FeatureFlags struct {
	// RepoOverrideDir, when non-empty, is a checkout of the canonical repo
	// used to patch every hotg-* dependency to a local path (spec.md §4.7c,
	// the S6 seed scenario).
	RepoOverrideDir string
}

// Hash derives a cachekey.Key from the flags, for use as part of a larger
// query's cache key.
func (f FeatureFlags) Hash() cachekey.Key {
	return cachekey.Derive(f.RepoOverrideDir)
}
