package cachekey

import "testing"

func TestDeriveIsDeterministic(t *testing.T) {
	a := Derive("build_context", "name=sine")
	b := Derive("build_context", "name=sine")

	if a != b {
		t.Fatalf("expected identical inputs to derive identical keys")
	}
}

func TestDeriveDistinguishesPartBoundaries(t *testing.T) {
	a := Derive("ab", "c")
	b := Derive("a", "bc")

	if a == b {
		t.Fatalf("expected length-prefixing to prevent part-boundary collisions")
	}
}

func TestDeriveIsSensitiveToOrder(t *testing.T) {
	a := Derive("x", "y")
	b := Derive("y", "x")

	if a == b {
		t.Fatalf("expected argument order to affect the derived key")
	}
}

func TestDeriveBytes(t *testing.T) {
	a := DeriveBytes([]byte("model bytes"))
	b := DeriveBytes([]byte("model bytes"))
	c := DeriveBytes([]byte("different bytes"))

	if a != b {
		t.Fatalf("expected identical byte inputs to derive identical keys")
	}
	if a == c {
		t.Fatalf("expected different byte inputs to derive different keys")
	}
}
