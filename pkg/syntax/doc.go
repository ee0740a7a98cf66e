// Package syntax parses Runefile YAML text into the surface AST: Document,
// Stage, TensorType and Value (spec.md §3, §4.1, §6.1).
//
// Stage and Value are tagged unions; Go has no native sum type, so both
// implement yaml.Marshaler/yaml.Unmarshaler by hand. Decoding a Stage
// inspects which of the discriminating keys (capability/model/proc-block/
// out) is present; decoding a Value inspects the YAML node's scalar tag or
// sequence kind.
package syntax
