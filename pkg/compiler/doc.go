// Package compiler drives the phases (spec.md §6): parse, lower,
// type-check, codegen, then finalize. Build runs the whole pipeline with no
// observation points; BuildWithHooks calls into a pkg/hooks.Hook at each of
// the six phase boundaries the driver defines, letting a caller halt early
// or inspect intermediate state (spec.md §6.2).
package compiler
