package hooks

import (
	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/ir"
)

// Continuation is a hook's verdict on whether the build should proceed.
type Continuation int

const (
	Continue Continuation = iota
	Halt
)

func (c Continuation) String() string {
	if c == Halt {
		return "halt"
	}
	return "continue"
}

// Ctx is the state visible to a hook at the point it's called. World is nil
// before lowering has run; Diagnostics is never nil.
type Ctx struct {
	World       *ir.World
	Diagnostics *diag.Collection
}

// Hook observes every phase boundary the driver defines (spec.md §6.2).
// Phase boundaries are the only observation points: there is no coroutine
// or mid-phase suspension.
type Hook interface {
	BeforeParse(*Ctx) Continuation
	AfterParse(*Ctx) Continuation
	AfterLowering(*Ctx) Continuation
	AfterTypeChecking(*Ctx) Continuation
	AfterCodegen(*Ctx) Continuation
	AfterCompile(*Ctx) Continuation
}

// NopHooks continues at every boundary. Embed it to implement Hook while
// overriding only the boundaries you care about.
type NopHooks struct{}

func (NopHooks) BeforeParse(*Ctx) Continuation       { return Continue }
func (NopHooks) AfterParse(*Ctx) Continuation        { return Continue }
func (NopHooks) AfterLowering(*Ctx) Continuation     { return Continue }
func (NopHooks) AfterTypeChecking(*Ctx) Continuation { return Continue }
func (NopHooks) AfterCodegen(*Ctx) Continuation      { return Continue }
func (NopHooks) AfterCompile(*Ctx) Continuation      { return Continue }
