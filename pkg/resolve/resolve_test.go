package resolve_test

import (
	"testing"

	"github.com/hotg-ai/rune-compiler/pkg/path"
	"github.com/hotg-ai/rune-compiler/pkg/resolve"
)

func TestResolveBuiltin(t *testing.T) {
	p := path.New(resolve.CanonicalRepo, "", "proc_blocks/normalize")
	d := resolve.Resolve(p, "/work")

	if d.Kind != resolve.Builtin {
		t.Fatalf("Kind = %s, want builtin", d.Kind)
	}
	if d.Git != resolve.CanonicalRepoURL {
		t.Fatalf("Git = %q, want %q", d.Git, resolve.CanonicalRepoURL)
	}
	if d.Tag != "v"+resolve.CoreVersion {
		t.Fatalf("Tag = %q, want %q", d.Tag, "v"+resolve.CoreVersion)
	}
}

func TestResolveLocal(t *testing.T) {
	p := path.New("./proc_blocks/custom", "", "")
	d := resolve.Resolve(p, "/home/user/project")

	if d.Kind != resolve.Local {
		t.Fatalf("Kind = %s, want local", d.Kind)
	}
	want := "/home/user/project/proc_blocks/custom"
	if d.LocalPath != want {
		t.Fatalf("LocalPath = %q, want %q", d.LocalPath, want)
	}
}

func TestResolveRegistry(t *testing.T) {
	p := path.New("normalize", "1.2.0", "")
	d := resolve.Resolve(p, "/work")

	if d.Kind != resolve.Registry {
		t.Fatalf("Kind = %s, want registry", d.Kind)
	}
	if d.Version != "1.2.0" {
		t.Fatalf("Version = %q, want %q", d.Version, "1.2.0")
	}
}

func TestResolveRegistryRequiresVersion(t *testing.T) {
	// A bare name with no version and no "/" is neither builtin, local, nor
	// a complete registry reference (no version to pin) — it falls through
	// to the git branch, which at least records something resolvable.
	p := path.New("normalize", "", "")
	d := resolve.Resolve(p, "/work")

	if d.Kind != resolve.Git {
		t.Fatalf("Kind = %s, want git", d.Kind)
	}
}

func TestResolveGitFallbackWithOwnerSlashName(t *testing.T) {
	p := path.New("example-org/custom-proc-block", "v2.0.0", "proc_blocks/fft")
	d := resolve.Resolve(p, "/work")

	if d.Kind != resolve.Git {
		t.Fatalf("Kind = %s, want git", d.Kind)
	}
	if d.Git != "https://github.com/example-org/custom-proc-block.git" {
		t.Fatalf("Git = %q", d.Git)
	}
	if d.Tag != "v2.0.0" {
		t.Fatalf("Tag = %q, want %q", d.Tag, "v2.0.0")
	}
	if d.SubDir != "proc_blocks/fft" {
		t.Fatalf("SubDir = %q, want %q", d.SubDir, "proc_blocks/fft")
	}
}

func TestResolveGitFallbackNoVersionNoSubPath(t *testing.T) {
	p := path.New("example-org/custom-proc-block", "", "")
	d := resolve.Resolve(p, "/work")

	if d.Kind != resolve.Git {
		t.Fatalf("Kind = %s, want git", d.Kind)
	}
	if d.Tag != "" {
		t.Fatalf("Tag = %q, want empty", d.Tag)
	}
	if d.SubDir != "" {
		t.Fatalf("SubDir = %q, want empty", d.SubDir)
	}
}

func TestIsFirstParty(t *testing.T) {
	cases := map[string]bool{
		"hotg-rune-core":    true,
		"hotg-ai/rune":      true,
		"normalize":         false,
		"example-org/thing": false,
	}
	for name, want := range cases {
		if got := resolve.IsFirstParty(name); got != want {
			t.Errorf("IsFirstParty(%q) = %v, want %v", name, got, want)
		}
	}
}
