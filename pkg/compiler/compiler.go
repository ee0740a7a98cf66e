package compiler

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hotg-ai/rune-compiler/pkg/codegen"
	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/hooks"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/ir"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
	"github.com/hotg-ai/rune-compiler/pkg/typecheck"
)

// runefileName is the fixed display name used to anchor diagnostics against
// ctx.Runefile's text, since BuildContext carries no filename of its own
// (spec.md §3) and spec.md §6.2 names the input format "Runefile".
const runefileName = "Runefile.yml"

// BuildContext, FeatureFlags, and Verbosity are defined in pkg/codegen (the
// lowest package that needs them) and re-exported here so callers only ever
// import pkg/compiler.
type (
	BuildContext = codegen.BuildContext
	FeatureFlags = codegen.FeatureFlags
	Verbosity    = codegen.Verbosity
)

const (
	Quiet   = codegen.Quiet
	Normal  = codegen.Normal
	Verbose = codegen.Verbose
)

// Result is everything a build produces: the world as it stood after
// type-checking, every diagnostic raised along the way, and the emitted
// file tree (nil if any diagnostic reached Error severity; spec.md §7).
type Result struct {
	World       *ir.World
	Diagnostics *diag.Collection
	Files       []codegen.File
}

// Build runs every phase with no hook observation (spec.md §6.1).
func Build(ctx BuildContext) Result {
	return BuildWithHooks(ctx, FeatureFlags{}, hooks.NopHooks{})
}

// BuildWithHooks runs the same phases as Build, calling hook at each of the
// six boundaries spec.md §6.2 defines. A Halt return stops the build
// immediately; Result.Files is nil in that case.
func BuildWithHooks(ctx BuildContext, features FeatureFlags, hook hooks.Hook) Result {
	diags := &diag.Collection{}
	hctx := func(world *ir.World) *hooks.Ctx {
		return &hooks.Ctx{World: world, Diagnostics: diags}
	}

	logf := func(format string, args ...interface{}) {
		if ctx.Verbosity >= Verbose {
			log.Printf(format, args...)
		}
	}

	if hook.BeforeParse(hctx(nil)) == hooks.Halt {
		return Result{Diagnostics: diags}
	}

	logf(`Beginning the "parse" phase`)
	doc, err := syntax.Parse(ctx.Runefile)
	if err != nil {
		diags.Push(syntax.DiagnosticFromParseError(runefileName, ctx.Runefile, err))
		return Result{Diagnostics: diags}
	}
	locator := diag.NewLocator(ctx.Runefile)

	if hook.AfterParse(hctx(nil)) == hooks.Halt {
		return Result{Diagnostics: diags}
	}
	if diags.HasErrors() {
		return Result{Diagnostics: diags}
	}

	logf(`Beginning the "lowering" phase`)
	interner := ident.NewInterner()
	world := ir.Lower(doc, interner, ir.Options{
		File:             runefileName,
		CurrentDirectory: ctx.CurrentDirectory,
		ModelLoader:      defaultModelLoader(ctx.CurrentDirectory),
		Locator:          locator,
	}, diags)

	if hook.AfterLowering(hctx(world)) == hooks.Halt {
		return Result{World: world, Diagnostics: diags}
	}
	if diags.HasErrors() {
		return Result{World: world, Diagnostics: diags}
	}

	logf(`Beginning the "type check" phase`)
	typecheck.Run(world, diags)

	if hook.AfterTypeChecking(hctx(world)) == hooks.Halt {
		return Result{World: world, Diagnostics: diags}
	}
	if diags.HasErrors() {
		return Result{World: world, Diagnostics: diags}
	}

	logf(`Beginning the "codegen" phase`)
	db := codegen.NewDatabase(ctx, features, world)
	files, err := db.Files()
	if err != nil {
		diags.Push(diag.New(diag.Error, err.Error(), diag.Span{File: runefileName}))
		return Result{World: world, Diagnostics: diags}
	}

	if hook.AfterCodegen(hctx(world)) == hooks.Halt {
		return Result{World: world, Diagnostics: diags}
	}
	if diags.HasErrors() {
		return Result{World: world, Diagnostics: diags}
	}

	if hook.AfterCompile(hctx(world)) == hooks.Halt {
		return Result{World: world, Diagnostics: diags}
	}
	if diags.HasErrors() {
		return Result{World: world, Diagnostics: diags}
	}

	return Result{World: world, Diagnostics: diags, Files: files}
}

func defaultModelLoader(currentDirectory string) ir.ModelLoader {
	return func(path string) ([]byte, error) {
		return os.ReadFile(filepath.Join(currentDirectory, path))
	}
}
