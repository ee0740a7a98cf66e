package cachekey

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Key is an opaque, comparable cache key.
type Key [sha256.Size]byte

// String renders the key as hex, useful for logging and test fixtures.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Derive hashes parts, in order, into a single Key. Each part is
// length-prefixed before being written so that ("ab", "c") and ("a", "bc")
// never collide.
func Derive(parts ...string) Key {
	h := sha256.New()
	var lenBuf [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:])
		h.Write([]byte(p))
	}

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// DeriveBytes is Derive for raw byte parts, used by queries whose input is
// already a byte slice (model file contents, for example).
func DeriveBytes(parts ...[]byte) Key {
	h := sha256.New()
	var lenBuf [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:])
		h.Write(p)
	}

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}
