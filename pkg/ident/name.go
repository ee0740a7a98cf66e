package ident

import "sync"

// Name is an interned identifier. The zero value is not a valid Name; use
// Interner.Intern to create one.
type Name struct {
	ptr *string
}

// String returns the underlying text.
func (n Name) String() string {
	if n.ptr == nil {
		return ""
	}
	return *n.ptr
}

// IsZero reports whether n was never produced by an Interner.
func (n Name) IsZero() bool {
	return n.ptr == nil
}

// Equal reports whether n and other were interned from equal strings. If
// both were produced by the same Interner this is a pointer comparison;
// otherwise it falls back to comparing the underlying bytes.
func (n Name) Equal(other Name) bool {
	if n.ptr == other.ptr {
		return true
	}
	if n.ptr == nil || other.ptr == nil {
		return false
	}
	return *n.ptr == *other.ptr
}

// Less orders two Names lexicographically by their underlying text. It
// exists so slices of Name can be sorted deterministically (spec.md §5
// requires normalized iteration order everywhere a hash map is visited).
func (n Name) Less(other Name) bool {
	return n.String() < other.String()
}

// Interner deduplicates Name allocations so that repeated stage names
// collapse to the same backing string. It is safe for concurrent use,
// though the compiler itself never calls it from more than one goroutine
// (spec.md §5: single-threaded cooperative).
type Interner struct {
	mu    sync.RWMutex
	table map[string]*string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*string)}
}

// Intern returns the Name for s, allocating a new backing string the first
// time s is seen and reusing it on every subsequent call.
func (in *Interner) Intern(s string) Name {
	in.mu.RLock()
	if p, ok := in.table[s]; ok {
		in.mu.RUnlock()
		return Name{ptr: p}
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if p, ok := in.table[s]; ok {
		return Name{ptr: p}
	}
	cp := s
	in.table[s] = &cp
	return Name{ptr: &cp}
}

// Names is a slice of Name that implements sort.Interface, ordering by
// Name.Less.
type Names []Name

func (n Names) Len() int           { return len(n) }
func (n Names) Less(i, j int) bool { return n[i].Less(n[j]) }
func (n Names) Swap(i, j int)      { n[i], n[j] = n[j], n[i] }
