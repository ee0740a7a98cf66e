// Package diag implements the compiler's diagnostics model: severity-tagged
// messages with source spans, collected in an append-only Collection and
// queryable by severity (spec.md §3, §4.9, §6.4).
//
// Diagnostics are the only channel a phase uses to report a problem; no
// phase aborts on a recoverable error (spec.md §7). A Collection whose
// highest severity is Error or worse signals the caller not to consume the
// emitted file tree.
package diag
