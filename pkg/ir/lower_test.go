package ir_test

import (
	"testing"

	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/ir"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
)

func mustParse(t *testing.T, src string) *syntax.Document {
	t.Helper()
	doc, err := syntax.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestLowerSimplePipeline(t *testing.T) {
	src := `
image: hotg-ai/rune@0.12.0
pipeline:
  audio:
    capability: sound
    outputs:
      - type: i16
        dimensions: [16000]
  fft:
    proc-block: hotg-ai/rune@0.12.0#proc_blocks/fft
    inputs:
      - audio
    outputs:
      - type: f32
        dimensions: [1960]
  output:
    out: serial
    inputs:
      - fft
`
	doc := mustParse(t, src)
	interner := ident.NewInterner()
	var diags diag.Collection

	w := ir.Lower(doc, interner, ir.Options{File: "Runefile.yml", CurrentDirectory: "."}, &diags)

	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}

	names := w.Names()
	if len(names) != 3 {
		t.Fatalf("got %d names, want 3", len(names))
	}
	// Names() is sorted ascending lexicographically.
	want := []string{"audio", "fft", "output"}
	for i, n := range names {
		if n.String() != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, n.String(), want[i])
		}
	}

	audio, ok := w.Entity(interner.Intern("audio"))
	if !ok || audio.Kind != ir.KindCapability {
		t.Fatalf("audio entity missing or wrong kind: %+v", audio)
	}

	fft, ok := w.Entity(interner.Intern("fft"))
	if !ok || fft.Kind != ir.KindProcBlock {
		t.Fatalf("fft entity missing or wrong kind: %+v", fft)
	}
	if len(fft.Inputs) != 1 || fft.Inputs[0].String() != "audio" {
		t.Fatalf("fft.Inputs = %v, want [audio]", fft.Inputs)
	}
	if fft.ProcBlock == nil {
		t.Fatal("fft.ProcBlock component missing")
	}

	edges := w.Edges()
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
}

func TestLowerUnknownInputIsError(t *testing.T) {
	src := `
image: hotg-ai/rune@0.12.0
pipeline:
  output:
    out: serial
    inputs:
      - missing_stage
`
	doc := mustParse(t, src)
	interner := ident.NewInterner()
	var diags diag.Collection

	ir.Lower(doc, interner, ir.Options{File: "Runefile.yml"}, &diags)

	if !diags.HasErrors() {
		t.Fatal("expected an error diagnostic for an unknown input reference")
	}
}

func TestLowerInputSlotIndex(t *testing.T) {
	src := `
image: hotg-ai/rune@0.12.0
pipeline:
  model:
    model: ./model.tflite
    inputs:
      - audio
    outputs:
      - type: f32
        dimensions: [10]
      - type: f32
        dimensions: [1]
  audio:
    capability: sound
    outputs:
      - type: i16
        dimensions: [16000]
  output:
    out: serial
    inputs:
      - model.1
`
	doc := mustParse(t, src)
	interner := ident.NewInterner()
	var diags diag.Collection

	w := ir.Lower(doc, interner, ir.Options{File: "Runefile.yml"}, &diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}

	var found bool
	for _, e := range w.Edges() {
		if e.Consumer.String() == "output" {
			found = true
			if e.Producer.String() != "model" || e.Slot != 1 {
				t.Fatalf("edge = %+v, want producer=model slot=1", e)
			}
		}
	}
	if !found {
		t.Fatal("no edge into output found")
	}
}
