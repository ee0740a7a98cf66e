package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/hotg-ai/rune-compiler/pkg/resolve"
)

// cargoManifest mirrors the shape generate_manifest produces: a package
// table, a cdylib lib product, a flat dependency map, a single-member
// workspace, and (when a repo override is active) patch tables redirecting
// first-party dependencies to a local checkout.
type cargoManifest struct {
	Package   manifestPackage                   `toml:"package"`
	Lib       manifestLib                       `toml:"lib"`
	Deps      map[string]interface{}            `toml:"dependencies"`
	Workspace manifestWorkspace                 `toml:"workspace"`
	Patch     map[string]map[string]interface{} `toml:"patch,omitempty"`
}

type manifestPackage struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Edition  string `toml:"edition"`
	Publish  bool   `toml:"publish"`
	Resolver string `toml:"resolver"`
}

type manifestLib struct {
	Path      string   `toml:"path"`
	Edition   string   `toml:"edition"`
	CrateType []string `toml:"crate-type"`
}

type manifestWorkspace struct {
	Members        []string `toml:"members"`
	DefaultMembers []string `toml:"default-members"`
}

// gitDependency and the other table shapes below mirror Cargo's
// DependencyDetail: only the fields relevant to a given dependency kind are
// populated, and toml's omitempty keeps the rest out of the output.
type gitDependency struct {
	Git      string   `toml:"git,omitempty"`
	Tag      string   `toml:"tag,omitempty"`
	Path     string   `toml:"path,omitempty"`
	Version  string   `toml:"version,omitempty"`
	Features []string `toml:"features,omitempty"`
}

// EmitManifest builds and serializes Cargo.toml for the pipeline db
// describes (spec.md §4.7a/c).
func EmitManifest(db *Database) (File, error) {
	deps := make(map[string]interface{})

	deps["log"] = gitDependency{
		Version:  "0.4",
		Features: []string{"max_level_debug", "release_max_level_info"},
	}
	deps["lazy_static"] = gitDependency{
		Version:  "1.0",
		Features: []string{"spin_no_std"},
	}
	deps["hotg-rune-core"] = resolve.CoreVersion
	deps["hotg-rune-proc-blocks"] = resolve.CoreVersion
	deps["hotg-runicos-base-wasm"] = resolve.CoreVersion

	for _, name := range db.ProcBlockNames() {
		info, ok := db.ProcBlockInfo(name)
		if !ok {
			continue
		}
		// The crate name a proc-block resolves to in Cargo.toml is its
		// stage name, the same identity patch_hotg_dependencies matches
		// against when redirecting a dependency to a local checkout.
		deps[name.String()] = dependencyTable(info.Dependency)
	}

	manifest := cargoManifest{
		Package: manifestPackage{
			Name:     db.ctx.Name,
			Version:  "0.0.0",
			Edition:  "2018",
			Publish:  false,
			Resolver: "2",
		},
		Lib: manifestLib{
			Path:      "lib.rs",
			Edition:   "2018",
			CrateType: []string{"cdylib"},
		},
		Deps: deps,
		Workspace: manifestWorkspace{
			Members:        []string{"."},
			DefaultMembers: []string{"."},
		},
	}

	if db.features.RepoOverrideDir != "" {
		manifest.Patch = patchTables(deps, db.features.RepoOverrideDir)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
		return File{}, fmt.Errorf("encoding Cargo.toml: %w", err)
	}
	return File{Path: "Cargo.toml", Data: buf.Bytes()}, nil
}

// dependencyTable renders a resolve.Dependency the way Cargo expects it,
// picking the minimal field set for its Kind.
func dependencyTable(d resolve.Dependency) interface{} {
	switch d.Kind {
	case resolve.Builtin:
		return gitDependency{Git: d.Git, Tag: d.Tag}
	case resolve.Local:
		return gitDependency{Path: d.LocalPath}
	case resolve.Registry:
		return d.Version
	default: // resolve.Git
		return gitDependency{Git: d.Git, Tag: d.Tag}
	}
}

// knownFirstPartyPaths mirrors patch_hotg_dependencies' table of crates
// whose location in the canonical repo checkout isn't simply
// proc-blocks/<name>.
var knownFirstPartyPaths = map[string]string{
	"hotg-rune-core":         "crates/rune-core",
	"hotg-rune-proc-blocks":  "proc-blocks/proc-blocks",
	"hotg-runicos-base-wasm": "images/runicos-base/wasm",
}

// patchTables builds the `[patch.crates-io]` and `[patch."<repo>"]` tables
// that redirect every first-party dependency in deps to a path under
// overrideDir (spec.md §4.7c, S6).
func patchTables(deps map[string]interface{}, overrideDir string) map[string]map[string]interface{} {
	overrides := make(map[string]interface{})

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dep := deps[name]
		usesCanonicalRepo := false
		if g, ok := dep.(gitDependency); ok {
			usesCanonicalRepo = g.Git == resolve.CanonicalRepoURL
		}
		if !resolve.IsFirstParty(name) && !usesCanonicalRepo {
			continue
		}

		sub, ok := knownFirstPartyPaths[name]
		if !ok {
			sub = "proc-blocks/" + name
		}
		overrides[name] = gitDependency{Path: overrideDir + "/" + sub}
	}

	return map[string]map[string]interface{}{
		"crates-io":              overrides,
		resolve.CanonicalRepoURL: overrides,
	}
}
