package codegen

import (
	"sort"
	"sync"

	"github.com/hotg-ai/rune-compiler/pkg/cachekey"
	"github.com/hotg-ai/rune-compiler/pkg/ident"
	"github.com/hotg-ai/rune-compiler/pkg/ir"
	"github.com/hotg-ai/rune-compiler/pkg/syntax"
)

// File is one emitted file: a path relative to the build's output root, and
// its contents.
type File struct {
	Path string
	Data []byte
}

// memo lazily evaluates and caches one result per cachekey.Key, guarding
// each key's computation with its own sync.Once so concurrent callers never
// redo work (spec.md §4.6: "queries execute lazily").
type memo struct {
	mu    sync.Mutex
	onces map[cachekey.Key]*memoEntry
}

type memoEntry struct {
	once  sync.Once
	value interface{}
	err   error
}

func newMemo() *memo {
	return &memo{onces: make(map[cachekey.Key]*memoEntry)}
}

func (m *memo) get(key cachekey.Key, compute func() (interface{}, error)) (interface{}, error) {
	m.mu.Lock()
	e, ok := m.onces[key]
	if !ok {
		e = &memoEntry{}
		m.onces[key] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.value, e.err = compute()
	})
	return e.value, e.err
}

// Database answers every query spec.md §4.6 names against a single
// BuildContext, FeatureFlags, and World. Only ModelData is memoized (per
// model path, keyed by content hash); the other queries, Files included,
// are recomputed from those fixed inputs on every call.
type Database struct {
	ctx      BuildContext
	features FeatureFlags
	world    *ir.World
	memo     *memo
}

// NewDatabase builds a Database over an already-lowered World.
func NewDatabase(ctx BuildContext, features FeatureFlags, world *ir.World) *Database {
	return &Database{ctx: ctx, features: features, world: world, memo: newMemo()}
}

// BuildContext returns the query input build_context() names.
func (db *Database) BuildContext() BuildContext { return db.ctx }

// FeatureFlags returns the query input feature_flags() names.
func (db *Database) FeatureFlags() FeatureFlags { return db.features }

// ProcBlockNames returns every proc-block stage's name, sorted ascending
// (spec.md §4.6: "ordered lists").
func (db *Database) ProcBlockNames() []ident.Name {
	return db.namesOfKind(ir.KindProcBlock)
}

// ModelNames returns every model stage's name, sorted ascending.
func (db *Database) ModelNames() []ident.Name {
	return db.namesOfKind(ir.KindModel)
}

func (db *Database) namesOfKind(kind ir.Kind) []ident.Name {
	var out []ident.Name
	for _, e := range db.world.Entities() {
		if e.Kind == kind {
			out = append(out, e.Name)
		}
	}
	sort.Sort(ident.Names(out))
	return out
}

// NodeInputs returns name's declared Inputs, or nil if name doesn't exist.
func (db *Database) NodeInputs(name ident.Name) []ident.Name {
	e, ok := db.world.Entity(name)
	if !ok {
		return nil
	}
	return e.Inputs
}

// NodeOutputs returns name's declared Outputs, or nil if name doesn't
// exist.
func (db *Database) NodeOutputs(name ident.Name) []syntax.TensorType {
	e, ok := db.world.Entity(name)
	if !ok {
		return nil
	}
	return e.Outputs
}

// ProcBlockInfo returns the ProcBlockData for name, if name is a proc-block
// stage.
func (db *Database) ProcBlockInfo(name ident.Name) (*ir.ProcBlockData, bool) {
	e, ok := db.world.Entity(name)
	if !ok || e.Kind != ir.KindProcBlock {
		return nil, false
	}
	return e.ProcBlock, true
}

// ModelInfo returns the ModelData for name, if name is a model stage.
func (db *Database) ModelInfo(name ident.Name) (*ir.ModelData, bool) {
	e, ok := db.world.Entity(name)
	if !ok || e.Kind != ir.KindModel {
		return nil, false
	}
	return e.Model, true
}

// ModelData returns the loaded bytes for a model stage, memoized per model
// path so repeated queries for the same model never re-read the file
// (spec.md §4.6: `model_data(name)`).
func (db *Database) ModelData(name ident.Name) ([]byte, error) {
	m, ok := db.ModelInfo(name)
	if !ok {
		return nil, nil
	}
	key := cachekey.Derive("model_data", m.Path)
	v, err := db.memo.get(key, func() (interface{}, error) {
		return m.Bytes()
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Files runs every emitter and returns the resulting file tree in a
// deterministic order (spec.md §4.6: `files()` returns an "ordered list").
func (db *Database) Files() ([]File, error) {
	manifest, err := EmitManifest(db)
	if err != nil {
		return nil, err
	}
	config, err := EmitCargoConfig(db.ctx.Optimized)
	if err != nil {
		return nil, err
	}
	lib := EmitLibRS()

	files := []File{manifest, config, lib}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
