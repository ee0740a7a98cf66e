// Package hooks defines the phase-boundary observation points pkg/compiler
// calls into (spec.md §6.2): BeforeParse, AfterParse, AfterLowering,
// AfterTypeChecking, AfterCodegen, and AfterCompile. Each returns a
// Continuation telling the driver whether to keep going or stop.
package hooks
