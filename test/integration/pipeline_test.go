// Package integration exercises pkg/compiler end to end over the seed
// scenarios spec.md §8 names that involve a full build (S1, S2, S3 and S6),
// rather than unit-testing any single phase in isolation.
package integration

import (
	"strings"
	"testing"

	"github.com/hotg-ai/rune-compiler/pkg/compiler"
	"github.com/hotg-ai/rune-compiler/pkg/hooks"
)

// S1 — Minimal sine pipeline.
func TestS1MinimalSinePipeline(t *testing.T) {
	result := compiler.Build(compiler.BuildContext{
		Name: "sine",
		Runefile: `
image: hotg-ai/rune@0.12.0
pipeline:
  rand:
    capability: RAND
    outputs:
      - type: f32
        dimensions: [1]
  sine:
    model: ./sine.tflite
    inputs:
      - rand
    outputs:
      - type: f32
        dimensions: [1]
  output:
    out: SERIAL
    inputs:
      - sine
`,
		CurrentDirectory: t.TempDir(),
	})

	if result.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Diagnostics.All())
	}
	if len(result.Files) != 3 {
		t.Fatalf("got %d files, want 3", len(result.Files))
	}

	var manifest string
	var config string
	for _, f := range result.Files {
		switch f.Path {
		case "Cargo.toml":
			manifest = string(f.Data)
		case ".cargo/config.toml":
			config = string(f.Data)
		}
	}

	for _, want := range []string{"hotg-rune-core", "hotg-rune-proc-blocks", "hotg-runicos-base-wasm", "log", "lazy_static"} {
		if !strings.Contains(manifest, want) {
			t.Errorf("Cargo.toml missing dependency %q", want)
		}
	}
	if !strings.Contains(config, "wasm32-unknown-unknown") {
		t.Errorf("config.toml missing wasm target")
	}
}

// S2 — Optimized vs debug cargo config.
func TestS2OptimizedVsDebugCargoConfig(t *testing.T) {
	src := `
image: hotg-ai/rune@0.12.0
pipeline:
  rand:
    capability: RAND
    outputs:
      - type: f32
        dimensions: [1]
  sine:
    model: ./sine.tflite
    inputs:
      - rand
    outputs:
      - type: f32
        dimensions: [1]
  output:
    out: SERIAL
    inputs:
      - sine
`
	optimized := compiler.Build(compiler.BuildContext{
		Name: "sine", Runefile: src, CurrentDirectory: t.TempDir(), Optimized: true,
	})
	debug := compiler.Build(compiler.BuildContext{
		Name: "sine", Runefile: src, CurrentDirectory: t.TempDir(), Optimized: false,
	})

	var optConfig, dbgConfig string
	for _, f := range optimized.Files {
		if f.Path == ".cargo/config.toml" {
			optConfig = string(f.Data)
		}
	}
	for _, f := range debug.Files {
		if f.Path == ".cargo/config.toml" {
			dbgConfig = string(f.Data)
		}
	}

	if !strings.Contains(optConfig, "link-arg=-s") {
		t.Errorf("optimized config missing rustflags:\n%s", optConfig)
	}
	if strings.Contains(dbgConfig, "rustflags") {
		t.Errorf("debug config should not set rustflags:\n%s", dbgConfig)
	}
}

// S3 — Cycle detection.
func TestS3CycleDetection(t *testing.T) {
	result := compiler.Build(compiler.BuildContext{
		Name: "cycle",
		Runefile: `
image: hotg-ai/rune@0.12.0
pipeline:
  audio:
    proc-block: hotg-ai/rune@0.12.0#proc_blocks/audio
    outputs:
      - type: i16
        dimensions: [16000]
    inputs:
      - model
  model:
    model: ./m.tflite
    inputs:
      - fft
    outputs:
      - type: f32
        dimensions: [1]
  fft:
    proc-block: hotg-ai/rune@0.12.0#proc_blocks/fft
    inputs:
      - audio
    outputs:
      - type: f32
        dimensions: [1]
`,
		CurrentDirectory: t.TempDir(),
	})

	if !result.Diagnostics.HasErrors() {
		t.Fatal("expected a cycle error")
	}
	var found bool
	for _, d := range result.Diagnostics.All() {
		if strings.Contains(d.Message, `Cycle detected when checking "audio"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the audio cycle message, got: %v", result.Diagnostics.All())
	}
	if result.Files != nil {
		t.Fatal("expected no files on a failed build")
	}
}

// S4 and S5 are covered directly in pkg/resolve/resolve_test.go
// (TestResolveBuiltin, TestResolveRegistry), since they test the resolver in
// isolation rather than an end-to-end build.

// S6 — Override patch.
func TestS6OverridePatch(t *testing.T) {
	result := compiler.BuildWithHooks(
		compiler.BuildContext{Name: "fft-pipeline", Runefile: `
image: hotg-ai/rune@0.12.0
pipeline:
  audio:
    capability: sound
    outputs:
      - type: f32
        dimensions: [1960]
  fft:
    proc-block: hotg-ai/rune@0.12.0#proc_blocks/fft
    inputs:
      - audio
    outputs:
      - type: f32
        dimensions: [1960]
  output:
    out: SERIAL
    inputs:
      - fft
`, CurrentDirectory: t.TempDir()},
		compiler.FeatureFlags{RepoOverrideDir: "/tmp/rune"},
		hooks.NopHooks{},
	)

	if result.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Diagnostics.All())
	}

	var manifest string
	for _, f := range result.Files {
		if f.Path == "Cargo.toml" {
			manifest = string(f.Data)
		}
	}
	for _, want := range []string{"hotg-rune-core", "hotg-rune-proc-blocks", "hotg-runicos-base-wasm", "/tmp/rune"} {
		if !strings.Contains(manifest, want) {
			t.Errorf("Cargo.toml patch tables missing %q:\n%s", want, manifest)
		}
	}
}
