package ir

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/resolve"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
)

// Options configures Lower with everything it needs beyond the Document
// itself: where to anchor diagnostics, how to load model files, and what
// directory dependency resolution treats as current (spec.md §4.5).
type Options struct {
	File             string
	CurrentDirectory string
	ModelLoader      ModelLoader
	Locator          *diag.Locator
}

// Lower runs both passes of spec.md §4.3 over doc, producing a World.
// Errors (unknown input references, malformed argument values) are recorded
// as diagnostics rather than returned; the caller decides whether to stop
// based on diags.HasErrors() after Lower returns, the same
// parse/continue-collecting-errors shape the rest of the phase driver uses.
func Lower(doc *syntax.Document, interner *ident.Interner, opts Options, diags *diag.Collection) *World {
	w := newWorld()

	// Pass A: name registration, sorted ascending lexicographically
	// (spec.md §4.3 Pass A).
	rawNames := make([]string, 0, len(doc.Pipeline))
	for name := range doc.Pipeline {
		rawNames = append(rawNames, name)
	}
	sort.Strings(rawNames)

	nameSet := make(map[ident.Name]bool, len(rawNames))
	for _, raw := range rawNames {
		n := interner.Intern(raw)
		w.names = append(w.names, n)
		nameSet[n] = true
	}

	// Pass B: stage materialization.
	for _, raw := range rawNames {
		stage := doc.Pipeline[raw]
		name := interner.Intern(raw)
		span := stageSpan(opts.Locator, opts.File, stage)

		entity := &Entity{
			Name:    name,
			Outputs: stage.Outputs,
			Span:    span,
		}

		for _, inputRef := range stage.Inputs {
			producer, slot, err := splitInput(inputRef)
			if err != nil {
				diags.Push(diag.New(diag.Error,
					fmt.Sprintf("stage %q: %s", raw, err), span))
				continue
			}
			producerName := interner.Intern(producer)
			if !nameSet[producerName] {
				diags.Push(diag.New(diag.Error,
					fmt.Sprintf("stage %q: input refers to unknown stage %q", raw, producer),
					span,
				))
				continue
			}

			position := len(entity.Inputs)
			entity.Inputs = append(entity.Inputs, producerName)
			w.edges = append(w.edges, Edge{
				Producer: producerName,
				Slot:     slot,
				Consumer: name,
				Position: position,
			})
		}

		switch stage.Kind {
		case syntax.KindCapability:
			entity.Kind = KindCapability
			args := lowerArgs(raw, stage.Args, diags, span)
			entity.Capability = &CapabilityData{Kind: stage.Capability, Args: args}
		case syntax.KindModel:
			entity.Kind = KindModel
			entity.Model = &ModelData{Path: stage.Model, loader: opts.ModelLoader}
		case syntax.KindProcBlock:
			entity.Kind = KindProcBlock
			args := lowerArgs(raw, stage.Args, diags, span)
			dep := resolve.Resolve(stage.ProcBlock, opts.CurrentDirectory)
			entity.ProcBlock = &ProcBlockData{Path: stage.ProcBlock, Args: args, Dependency: dep}
		case syntax.KindSink:
			entity.Kind = KindSink
			args := lowerArgs(raw, stage.Args, diags, span)
			entity.Sink = &SinkData{Out: stage.Out, Args: args}
		}

		w.entities[name] = entity
	}

	return w
}

// lowerArgs validates every argument value, recording a diagnostic for any
// list argument containing a non-string item (spec.md §4.3: "Argument
// lowering ... Lists of non-string values inside argument contexts that
// require string lists are rejected").
func lowerArgs(stageName string, args map[string]syntax.Value, diags *diag.Collection, span diag.Span) map[string]syntax.Value {
	for key, v := range args {
		if err := v.AssertStringListItems(); err != nil {
			diags.Push(diag.New(diag.Error,
				fmt.Sprintf("stage %q: argument %q: %s", stageName, key, err), span))
		}
	}
	return args
}

// splitInput splits an `inputs` entry on its first '.' into a stage name and
// an optional slot index, defaulting the slot to 0 (spec.md §4.3 Pass B).
func splitInput(ref string) (name string, slot int, err error) {
	if ref == "" {
		return "", 0, fmt.Errorf("empty input reference")
	}
	dot := strings.IndexByte(ref, '.')
	if dot < 0 {
		return ref, 0, nil
	}
	name = ref[:dot]
	slotStr := ref[dot+1:]
	if name == "" {
		return "", 0, fmt.Errorf("input reference %q has an empty stage name", ref)
	}
	slot, convErr := strconv.Atoi(slotStr)
	if convErr != nil {
		return "", 0, fmt.Errorf("input reference %q has a non-numeric slot %q", ref, slotStr)
	}
	return name, slot, nil
}

func stageSpan(locator *diag.Locator, file string, stage syntax.Stage) diag.Span {
	if locator == nil {
		return diag.Span{File: file}
	}
	return locator.Span(file, stage.Line, stage.Column)
}
