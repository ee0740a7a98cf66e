// Package typecheck validates a lowered World against spec.md §4.4: every
// sink has at least one input, every edge's producer/consumer TensorTypes
// are compatible, the producer graph contains no cycle, and every stage is
// reachable from some capability.
//
// Run records one diag.Diagnostic per violation rather than stopping at the
// first one, the same "collect everything, let severity decide" approach
// pkg/ir's Lower uses for lowering errors.
package typecheck
