package codegen

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

type cargoConfig struct {
	Target *targetsTable `toml:"target,omitempty"`
	Net    netTable      `toml:"net"`
	Build  buildTable    `toml:"build"`
}

type targetsTable struct {
	Wasm32UnknownUnknown targetTable `toml:"wasm32-unknown-unknown"`
}

type targetTable struct {
	RustFlags []string `toml:"rustflags"`
}

type netTable struct {
	GitFetchWithCLI bool `toml:"git-fetch-with-cli"`
}

type buildTable struct {
	Target string `toml:"target"`
}

// EmitCargoConfig builds .cargo/config.toml. The optimized build adds a
// `[target.wasm32-unknown-unknown]` table trimming the binary
// (spec.md §4.7b, S2).
func EmitCargoConfig(optimized bool) (File, error) {
	cfg := cargoConfig{
		Net:   netTable{GitFetchWithCLI: true},
		Build: buildTable{Target: "wasm32-unknown-unknown"},
	}
	if optimized {
		cfg.Target = &targetsTable{
			Wasm32UnknownUnknown: targetTable{RustFlags: []string{"-C", "link-arg=-s"}},
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return File{}, fmt.Errorf("encoding .cargo/config.toml: %w", err)
	}
	return File{Path: ".cargo/config.toml", Data: buf.Bytes()}, nil
}
