package syntax

import "gopkg.in/yaml.v3"

// yamlUnmarshal is a small test helper for decoding a bare Stage or Value
// fragment without wrapping it in a full Document.
func yamlUnmarshal(src string, out interface{}) error {
	return yaml.Unmarshal([]byte(src), out)
}
