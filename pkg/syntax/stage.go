package syntax

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hotg-ai/rune-compiler/pkg/path"
)

// StageKind discriminates the Stage union.
type StageKind int

const (
	KindCapability StageKind = iota
	KindModel
	KindProcBlock
	KindSink
)

func (k StageKind) String() string {
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

// Stage is a tagged variant with four cases (spec.md §3):
//
//	Capability{kind, outputs, args}
//	Model{path, inputs, outputs}
//	ProcBlock{proc_block, inputs, outputs, args}
//	Sink{out, inputs, args}
//
// Only the fields relevant to Kind are populated.
type Stage struct {
	Kind StageKind

	Capability string    // Kind == KindCapability
	Model      string    // Kind == KindModel
	ProcBlock  path.Path // Kind == KindProcBlock
	Out        string    // Kind == KindSink

	Inputs  []string
	Outputs []TensorType
	Args    map[string]Value

	// Line and Column are the 1-based source position of the stage's
	// mapping node, used to build diagnostic spans during lowering.
	Line, Column int
}

// stage discriminator keys, tried in this order: the first matching variant
// wins (spec.md §4.1).
const (
	keyCapability = "capability"
	keyModel      = "model"
	keyProcBlock  = "proc-block"
	keyOut        = "out"
	keyInputs     = "inputs"
	keyOutputs    = "outputs"
	keyArgs       = "args"
)

// UnmarshalYAML decodes a Stage by inspecting which discriminating key is
// present in the mapping, then rejecting any key not valid for that
// variant.
func (s *Stage) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: a stage must be a YAML mapping", node.Line)
	}

	keys := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys[node.Content[i].Value] = node.Content[i+1]
	}

	s.Line, s.Column = node.Line, node.Column

	switch {
	case keys[keyCapability] != nil:
		return s.decodeCapability(node, keys)
	case keys[keyModel] != nil:
		return s.decodeModel(node, keys)
	case keys[keyProcBlock] != nil:
		return s.decodeProcBlock(node, keys)
	case keys[keyOut] != nil:
		return s.decodeSink(node, keys)
	default:
		return fmt.Errorf(
			"line %d: stage has none of the discriminating keys (capability, model, proc-block, out)",
			node.Line,
		)
	}
}

func rejectUnknownKeys(node *yaml.Node, keys map[string]*yaml.Node, allowed ...string) error {
	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = true
	}
	for k := range keys {
		if !allowedSet[k] {
			return fmt.Errorf("line %d: unexpected key %q", node.Line, k)
		}
	}
	return nil
}

func decodeStringSlice(n *yaml.Node) ([]string, error) {
	if n == nil {
		return nil, nil
	}
	var out []string
	if err := n.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeTensorTypes(n *yaml.Node) ([]TensorType, error) {
	if n == nil {
		return nil, nil
	}
	var out []TensorType
	if err := n.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeArgs(n *yaml.Node) (map[string]Value, error) {
	if n == nil {
		return nil, nil
	}
	var out map[string]Value
	if err := n.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Stage) decodeCapability(node *yaml.Node, keys map[string]*yaml.Node) error {
	if err := rejectUnknownKeys(node, keys, keyCapability, keyOutputs, keyArgs); err != nil {
		return err
	}
	var capability string
	if err := keys[keyCapability].Decode(&capability); err != nil {
		return err
	}
	outputs, err := decodeTensorTypes(keys[keyOutputs])
	if err != nil {
		return err
	}
	args, err := decodeArgs(keys[keyArgs])
	if err != nil {
		return err
	}

	s.Kind = KindCapability
	s.Capability = capability
	s.Outputs = outputs
	s.Args = args
	return nil
}

func (s *Stage) decodeModel(node *yaml.Node, keys map[string]*yaml.Node) error {
	if err := rejectUnknownKeys(node, keys, keyModel, keyInputs, keyOutputs); err != nil {
		return err
	}
	var model string
	if err := keys[keyModel].Decode(&model); err != nil {
		return err
	}
	inputs, err := decodeStringSlice(keys[keyInputs])
	if err != nil {
		return err
	}
	outputs, err := decodeTensorTypes(keys[keyOutputs])
	if err != nil {
		return err
	}

	s.Kind = KindModel
	s.Model = model
	s.Inputs = inputs
	s.Outputs = outputs
	return nil
}

func (s *Stage) decodeProcBlock(node *yaml.Node, keys map[string]*yaml.Node) error {
	if err := rejectUnknownKeys(node, keys, keyProcBlock, keyInputs, keyOutputs, keyArgs); err != nil {
		return err
	}
	var raw string
	if err := keys[keyProcBlock].Decode(&raw); err != nil {
		return err
	}
	p, err := path.Parse(raw)
	if err != nil {
		return fmt.Errorf("line %d: proc-block: %w", node.Line, err)
	}
	inputs, err := decodeStringSlice(keys[keyInputs])
	if err != nil {
		return err
	}
	outputs, err := decodeTensorTypes(keys[keyOutputs])
	if err != nil {
		return err
	}
	args, err := decodeArgs(keys[keyArgs])
	if err != nil {
		return err
	}

	s.Kind = KindProcBlock
	s.ProcBlock = p
	s.Inputs = inputs
	s.Outputs = outputs
	s.Args = args
	return nil
}

func (s *Stage) decodeSink(node *yaml.Node, keys map[string]*yaml.Node) error {
	if err := rejectUnknownKeys(node, keys, keyOut, keyInputs, keyArgs); err != nil {
		return err
	}
	var out string
	if err := keys[keyOut].Decode(&out); err != nil {
		return err
	}
	inputs, err := decodeStringSlice(keys[keyInputs])
	if err != nil {
		return err
	}
	args, err := decodeArgs(keys[keyArgs])
	if err != nil {
		return err
	}

	s.Kind = KindSink
	s.Out = out
	s.Inputs = inputs
	s.Args = args
	return nil
}

// MarshalYAML renders a Stage back to the mapping form its Kind implies.
func (s Stage) MarshalYAML() (interface{}, error) {
	m := map[string]interface{}{}
	switch s.Kind {
	case KindCapability:
		m[keyCapability] = s.Capability
		if len(s.Outputs) > 0 {
			m[keyOutputs] = s.Outputs
		}
		if len(s.Args) > 0 {
			m[keyArgs] = s.Args
		}
	case KindModel:
		m[keyModel] = s.Model
		if len(s.Inputs) > 0 {
			m[keyInputs] = s.Inputs
		}
		if len(s.Outputs) > 0 {
			m[keyOutputs] = s.Outputs
		}
	case KindProcBlock:
		m[keyProcBlock] = s.ProcBlock.String()
		if len(s.Inputs) > 0 {
			m[keyInputs] = s.Inputs
		}
		if len(s.Outputs) > 0 {
			m[keyOutputs] = s.Outputs
		}
		if len(s.Args) > 0 {
			m[keyArgs] = s.Args
		}
	case KindSink:
		m[keyOut] = s.Out
		if len(s.Inputs) > 0 {
			m[keyInputs] = s.Inputs
		}
		if len(s.Args) > 0 {
			m[keyArgs] = s.Args
		}
	default:
		return nil, fmt.Errorf("invalid stage kind %v", s.Kind)
	}
	return m, nil
}
