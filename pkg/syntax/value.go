package syntax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the Value union.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueList
)

func (k ValueKind) String() string {
	switch k {
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	case ValueList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the tagged union `Int(i64) | Float(f64) | String | List([Value])`
// (spec.md §3).
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	List  []Value
}

func IntValue(i int64) Value      { return Value{Kind: ValueInt, Int: i} }
func FloatValue(f float64) Value  { return Value{Kind: ValueFloat, Float: f} }
func StringValue(s string) Value  { return Value{Kind: ValueString, Str: s} }
func ListValue(list []Value) Value { return Value{Kind: ValueList, List: list} }

// UnmarshalYAML decodes a Value from a scalar or sequence node, picking the
// variant from the node's YAML tag the way serde's `#[serde(untagged)]`
// tries each variant of the Rust Value enum in turn.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int":
			var i int64
			if err := node.Decode(&i); err != nil {
				return err
			}
			*v = IntValue(i)
		case "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}
			*v = FloatValue(f)
		default:
			var s string
			if err := node.Decode(&s); err != nil {
				return err
			}
			*v = StringValue(s)
		}
		return nil
	case yaml.SequenceNode:
		list := make([]Value, len(node.Content))
		for i, item := range node.Content {
			if err := list[i].UnmarshalYAML(item); err != nil {
				return err
			}
		}
		*v = ListValue(list)
		return nil
	default:
		return fmt.Errorf("line %d: a Value must be a scalar or a sequence", node.Line)
	}
}

// MarshalYAML renders v back to a plain Go value yaml.v3 can encode,
// letting Document round-trip through YAML for spec.md §8 invariant 1.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case ValueInt:
		return v.Int, nil
	case ValueFloat:
		return v.Float, nil
	case ValueString:
		return v.Str, nil
	case ValueList:
		out := make([]interface{}, len(v.List))
		for i, item := range v.List {
			rendered, err := item.MarshalYAML()
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid value kind %v", v.Kind)
	}
}

// AssertStringListItems rejects a List value containing a non-string item:
// a List argument is only meaningful downstream (e.g. the "labels" argument
// of a label proc-block) when every element is a string. Lowering calls
// this on every argument value (pkg/ir).
func (v Value) AssertStringListItems() error {
	if v.Kind != ValueList {
		return nil
	}
	for _, item := range v.List {
		if item.Kind != ValueString {
			return fmt.Errorf("list arguments must contain only strings, found a %s", item.Kind)
		}
	}
	return nil
}
