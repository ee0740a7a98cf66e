package typecheck

import (
	"fmt"

	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/ir"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
)

// color marks a node's DFS state for cycle detection: white (unvisited),
// gray (on the current path), black (fully explored).
type color int

const (
	white color = iota
	gray
	black
)

// Run checks w against spec.md §4.4 and records every violation found in
// diags. It does not stop at the first problem: sink-input checks, edge
// typing, cycle detection, and the unreachable-stage warning all run
// regardless of what earlier checks found.
func Run(w *ir.World, diags *diag.Collection) {
	checkSinksHaveInputs(w, diags)
	checkEdgeTypes(w, diags)
	detectCycle(w, diags)
	warnUnreachable(w, diags)
}

func checkSinksHaveInputs(w *ir.World, diags *diag.Collection) {
	for _, e := range w.Entities() {
		if e.Kind == ir.KindSink && len(e.Inputs) == 0 {
			diags.Push(diag.New(diag.Error,
				fmt.Sprintf("sink %q has no inputs", e.Name.String()), e.Span))
		}
	}
}

func checkEdgeTypes(w *ir.World, diags *diag.Collection) {
	for _, e := range w.Edges() {
		producer, ok := w.Entity(e.Producer)
		if !ok {
			continue
		}
		consumer, ok := w.Entity(e.Consumer)
		if !ok {
			continue
		}

		produced := producer.Output(e.Slot)
		expected := consumer.Output(e.Position)

		if !elementCompatible(produced, expected) {
			diags.Push(diag.New(diag.Error,
				fmt.Sprintf(
					"type mismatch: %q produces element type %q but %q expects %q",
					e.Producer.String(), produced.Element,
					e.Consumer.String(), expected.Element,
				),
				consumer.Span,
			).WithNote(
				fmt.Sprintf("%q declared here", e.Producer.String()), &producer.Span,
			).WithNote(
				fmt.Sprintf("%q declared here", e.Consumer.String()), &consumer.Span,
			))
			continue
		}

		if produced.Unspecified() || expected.Unspecified() {
			if produced.Unspecified() {
				diags.Push(diag.New(diag.Warning,
					fmt.Sprintf("%q's output dimensions are unspecified; accepted but not checked",
						e.Producer.String()),
					producer.Span,
				))
			}
			continue
		}

		if !dimsCompatible(produced.Dimensions, expected.Dimensions) {
			diags.Push(diag.New(diag.Error,
				fmt.Sprintf(
					"dimension mismatch: %q produces %v but %q expects %v",
					e.Producer.String(), produced.Dimensions,
					e.Consumer.String(), expected.Dimensions,
				),
				consumer.Span,
			).WithNote(
				fmt.Sprintf("%q declared here", e.Producer.String()), &producer.Span,
			).WithNote(
				fmt.Sprintf("%q declared here", e.Consumer.String()), &consumer.Span,
			))
		}
	}
}

// elementCompatible implements spec.md §4.4's element rule: equal types are
// compatible, and a consumer declaring no element type accepts anything
// (propagation).
func elementCompatible(produced, expected syntax.TensorType) bool {
	if expected.Element == "" {
		return true
	}
	return produced.Element == expected.Element
}

func dimsCompatible(produced, expected []int) bool {
	if len(produced) != len(expected) {
		return false
	}
	for i := range produced {
		if produced[i] != expected[i] {
			return false
		}
	}
	return true
}

// detectCycle runs one DFS per unvisited node, in w.Names() order (already
// sorted ascending), over the producer→consumer adjacency. It stops at the
// first cycle found and reports it (spec.md §4.4: "On encountering a gray
// node, emit one error").
func detectCycle(w *ir.World, diags *diag.Collection) {
	adjacency := w.ForwardAdjacency()
	colors := make(map[ident.Name]color)

	var path []ident.Name
	var visit func(n ident.Name) bool
	visit = func(n ident.Name) bool {
		colors[n] = gray
		path = append(path, n)

		for _, next := range adjacency[n] {
			switch colors[next] {
			case white:
				if visit(next) {
					return true
				}
			case gray:
				reportCycle(w, path, next, diags)
				return true
			}
		}

		path = path[:len(path)-1]
		colors[n] = black
		return false
	}

	for _, n := range w.Names() {
		if colors[n] == white {
			if visit(n) {
				return
			}
		}
	}
}

// reportCycle builds the single Error diagnostic spec.md §4.4 and its S3
// seed scenario describe: message naming the node the cycle closes on, and
// notes listing the remaining cycle members from the most recently visited
// back to (but excluding) the closing node, ending with a note naming the
// closing node again to complete the loop.
func reportCycle(w *ir.World, path []ident.Name, closing ident.Name, diags *diag.Collection) {
	start := 0
	for i, n := range path {
		if n.Equal(closing) {
			start = i
			break
		}
	}
	members := path[start:]

	span := diag.Span{}
	if e, ok := w.Entity(members[0]); ok {
		span = e.Span
	}

	d := diag.New(diag.Error,
		fmt.Sprintf("Cycle detected when checking %q", members[0].String()),
		span,
	)
	for i := len(members) - 1; i >= 1; i-- {
		var noteSpan *diag.Span
		if e, ok := w.Entity(members[i]); ok {
			s := e.Span
			noteSpan = &s
		}
		d = d.WithNote(fmt.Sprintf("%q is part of the cycle", members[i].String()), noteSpan)
	}
	d = d.WithNote(
		fmt.Sprintf("... which receives input from %q, completing the cycle.", members[0].String()),
		nil,
	)
	diags.Push(d)
}

// warnUnreachable flags any stage that is neither a capability nor
// reachable from one by following producer→consumer edges forward
// (spec.md §4.4).
func warnUnreachable(w *ir.World, diags *diag.Collection) {
	adjacency := w.ForwardAdjacency()
	reached := make(map[ident.Name]bool)

	var queue []ident.Name
	for _, e := range w.Entities() {
		if e.Kind == ir.KindCapability {
			reached[e.Name] = true
			queue = append(queue, e.Name)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[n] {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, e := range w.Entities() {
		if e.Kind != ir.KindCapability && !reached[e.Name] {
			diags.Push(diag.New(diag.Warning,
				fmt.Sprintf("stage %q is unreachable from any capability", e.Name.String()),
				e.Span,
			))
		}
	}
}
