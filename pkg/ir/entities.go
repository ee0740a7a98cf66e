package ir

import (
	"fmt"
	"sync"

	"github.com/hotg-ai/rune-compiler/pkg/diag"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/path"
	"github.com/hotg-ai/rune-compiler/pkg/resolve"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
)

// Kind discriminates which component set an Entity carries (spec.md §3).
type Kind int

const (
	KindCapability Kind = iota
	KindModel
	KindProcBlock
	KindSink
)

func (k Kind) String() string {
	switch k {
	case KindCapability:
		return "capability"
	case KindModel:
		return "model"
	case KindProcBlock:
		return "proc-block"
	case KindSink:
		return "out"
	default:
		return "unknown"
	}
}

// CapabilityData is the component attached to a Capability stage entity.
type CapabilityData struct {
	Kind string
	Args map[string]syntax.Value
}

// ModelLoader reads the bytes for a model file addressed by its declared
// path, relative to whatever directory the caller considers current.
type ModelLoader func(path string) ([]byte, error)

// ModelData is the component attached to a Model stage entity. Its bytes are
// lazily loaded and cached, keyed by Path (spec.md §3: "ModelData (the model
// file bytes, lazily loaded, keyed by path)"). Loading is synchronous and
// happens at most once per Entity (spec.md §5: file handles are opened,
// read in full, and released before the phase returns).
type ModelData struct {
	Path string

	loader ModelLoader
	once   sync.Once
	bytes  []byte
	err    error
}

// Bytes loads (once) and returns the model file's contents.
func (m *ModelData) Bytes() ([]byte, error) {
	m.once.Do(func() {
		if m.loader == nil {
			m.err = fmt.Errorf("model %q: no model loader configured", m.Path)
			return
		}
		m.bytes, m.err = m.loader(m.Path)
		if m.err != nil {
			m.err = fmt.Errorf("reading model %q: %w", m.Path, m.err)
		}
	})
	return m.bytes, m.err
}

// ProcBlockData is the component attached to a ProcBlock stage entity.
// Dependency is the resolved dependency descriptor computed during lowering
// (spec.md §3: "for ProcBlock: resolved dependency descriptor"; §4.5).
type ProcBlockData struct {
	Path       path.Path
	Args       map[string]syntax.Value
	Dependency resolve.Dependency
}

// SinkData is the component attached to a Sink (`out`) stage entity.
type SinkData struct {
	Out  string
	Args map[string]syntax.Value
}

// Entity is one stage's IR node: a Name, a Kind, the ordered Inputs/Outputs
// every stage has, and exactly one populated kind-specific component.
type Entity struct {
	Name    ident.Name
	Kind    Kind
	Inputs  []ident.Name
	Outputs []syntax.TensorType

	// Span addresses the stage's mapping node in the original runefile
	// text, used to anchor diagnostics raised about this entity by later
	// phases (spec.md §6.4).
	Span diag.Span

	Capability *CapabilityData
	Model      *ModelData
	ProcBlock  *ProcBlockData
	Sink       *SinkData
}

// Output returns the Entity's declared TensorType at the given output slot,
// or the zero TensorType (unspecified element, no dimensions) if the slot
// wasn't declared. An out-of-range slot is treated the same as an
// explicitly unspecified one (spec.md §9's open question on empty
// dimensions): permissive, not an error.
func (e *Entity) Output(slot int) syntax.TensorType {
	if slot < 0 || slot >= len(e.Outputs) {
		return syntax.TensorType{}
	}
	return e.Outputs[slot]
}
