package ir

import "github.com/hotg-ai/rune-compiler/pkg/ident"

// Edge is one directed adjacency in the pipeline graph: the Producer's
// declared output at Slot feeds the Consumer's input at Position (spec.md
// §3, §4.3 Pass B: "create a directed edge producer[slot] → consumer[position]").
type Edge struct {
	Producer ident.Name
	Slot     int
	Consumer ident.Name
	Position int
}
