package ir

import (
	"sort"

	"github.com/hotg-ai/rune-compiler/pkg/ident"
)

// World is the owning container for every Entity and Edge produced by
// lowering a single Document. It is built once by Lower and then only read
// by every later phase (spec.md §3: "The world is owned by the driver; no
// entity outlives the driver call").
type World struct {
	names    []ident.Name
	entities map[ident.Name]*Entity
	edges    []Edge
}

func newWorld() *World {
	return &World{entities: make(map[ident.Name]*Entity)}
}

// Names returns every stage name in Pass A order: sorted ascending
// lexicographically (spec.md §4.3), which is also the order Entities()
// iterates in.
func (w *World) Names() []ident.Name {
	return append([]ident.Name(nil), w.names...)
}

// Entity looks up a stage by name.
func (w *World) Entity(name ident.Name) (*Entity, bool) {
	e, ok := w.entities[name]
	return e, ok
}

// Entities returns every Entity in Names() order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.names))
	for _, n := range w.names {
		out = append(out, w.entities[n])
	}
	return out
}

// Edges returns every edge created during lowering, in the order stages
// (sorted by consumer name) declared their inputs.
func (w *World) Edges() []Edge {
	return append([]Edge(nil), w.edges...)
}

// ForwardAdjacency returns, for every stage that produces output consumed
// elsewhere, the sorted, deduplicated list of stages that declare it as an
// input — the direction data actually flows through the pipeline. Used by
// pkg/typecheck for cycle detection and the unreachable-stage warning
// (spec.md §4.4).
func (w *World) ForwardAdjacency() map[ident.Name][]ident.Name {
	seen := make(map[ident.Name]map[ident.Name]bool)
	for _, e := range w.edges {
		if seen[e.Producer] == nil {
			seen[e.Producer] = make(map[ident.Name]bool)
		}
		seen[e.Producer][e.Consumer] = true
	}

	adj := make(map[ident.Name][]ident.Name, len(seen))
	for producer, consumers := range seen {
		names := make(ident.Names, 0, len(consumers))
		for c := range consumers {
			names = append(names, c)
		}
		sort.Sort(names)
		adj[producer] = names
	}
	return adj
}
