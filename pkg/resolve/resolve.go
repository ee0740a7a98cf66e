package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hotg-ai/rune-compiler/pkg/path"
)

const (
	// CanonicalRepo is the built-in dependency's base, matched exactly
	// (spec.md §4.5: "Built-in: base == \"hotg-ai/rune\"").
	CanonicalRepo = "hotg-ai/rune"

	// CanonicalRepoURL is CanonicalRepo's git clone URL.
	CanonicalRepoURL = "https://github.com/hotg-ai/rune"

	// CoreVersion pins the version tag built-in proc-blocks resolve to
	// (`v{CORE_VERSION}`) and the version of the three always-present
	// hotg-rune-core/hotg-rune-proc-blocks/hotg-runicos-base-wasm
	// dependencies emitted into Cargo.toml (spec.md §4.7a). There is no
	// crate to read this from at build time here, so it is pinned as a
	// constant instead.
	CoreVersion = "0.12.0"
)

// Kind discriminates the four dependency shapes spec.md §4.5 describes.
type Kind int

const (
	Builtin Kind = iota
	Local
	Registry
	Git
)

func (k Kind) String() string {
	switch k {
	case Builtin:
		return "builtin"
	case Local:
		return "local"
	case Registry:
		return "registry"
	case Git:
		return "git"
	default:
		return "unknown"
	}
}

// Dependency is a resolved dependency descriptor. Which fields are
// meaningful depends on Kind.
type Dependency struct {
	Kind Kind

	Git string // Builtin, Git
	Tag string // Builtin, Git (optional for Git)

	Version string // Registry

	LocalPath string // Local

	// SubDir is the proc-block's sub_path, kept on the descriptor for
	// completeness and equality in tests; Cargo has no field for "a
	// subdirectory of a git dependency", so emit_manifest.go does not
	// serialize it.
	SubDir string
}

// IsFirstParty reports whether name looks like a first-party hotg-ai
// dependency by naming convention: the "hotg-" prefix patch_hotg_dependencies
// matches on.
func IsFirstParty(name string) bool {
	return strings.HasPrefix(name, "hotg-")
}

// Resolve decides which dependency kind p names and returns its descriptor
// (spec.md §4.5). currentDirectory anchors Local dependencies.
//
// Precedence, in order: built-in, local, registry, git fallback. A registry
// dependency requires both no sub_path and no "/" in base; either one
// present pushes the dependency to the git fallback instead.
func Resolve(p path.Path, currentDirectory string) Dependency {
	switch {
	case p.Base == CanonicalRepo:
		return Dependency{
			Kind: Builtin,
			Git:  CanonicalRepoURL,
			Tag:  "v" + CoreVersion,
		}
	case strings.HasPrefix(p.Base, "."):
		return Dependency{
			Kind:      Local,
			LocalPath: filepath.Join(currentDirectory, p.Base),
		}
	case !p.HasSubPath() && !strings.Contains(p.Base, "/") && p.HasVersion():
		return Dependency{
			Kind:    Registry,
			Version: p.Version,
		}
	default:
		d := Dependency{
			Kind: Git,
			Git:  fmt.Sprintf("https://github.com/%s.git", p.Base),
		}
		if p.HasVersion() {
			d.Tag = p.Version
		}
		if p.HasSubPath() {
			d.SubDir = p.SubPath
		}
		return d
	}
}
