package syntax

// TensorType is `{element, dimensions}` (spec.md §3). An empty Dimensions
// slice means scalar/unspecified.
type TensorType struct {
	Element    string `yaml:"type"`
	Dimensions []int  `yaml:"dimensions,omitempty"`
}

// Unspecified reports whether no dimensions were declared. spec.md §9's
// open question treats this as "unspecified, compatible with any",
// flagged with a Warning rather than rejected outright.
func (t TensorType) Unspecified() bool {
	return len(t.Dimensions) == 0
}
