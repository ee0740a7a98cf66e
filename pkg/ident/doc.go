// Package ident provides interned strings used as the stable identifiers
// for pipeline stages throughout the compiler.
//
// A Name is cheap to copy and compares in O(1): two Names produced by the
// same Interner from equal strings share the same backing allocation, so
// equality reduces to a pointer comparison, relying on Go's GC instead of
// reference counting.
package ident
