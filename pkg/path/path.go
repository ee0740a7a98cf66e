package path

import (
	"fmt"
	"regexp"
)

// Path is a dependency locator: base[@version][#sub_path].
//
// base is a repo slug (owner/name), a bare name (registry), or a URL.
// version and sub_path are optional. Equality is structural.
type Path struct {
	Base    string
	Version string // empty means absent
	SubPath string // empty means absent
}

// New builds a Path directly from its components, bypassing parsing. It is
// useful for constructing Paths programmatically (tests, built-in defaults)
// where the caller already knows the components are individually valid.
func New(base, version, subPath string) Path {
	return Path{Base: base, Version: version, SubPath: subPath}
}

// ParseError indicates a string does not match the Path grammar.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %q as a path", e.Input)
}

// The character classes are taken verbatim from spec.md §4.2: a strict
// ASCII subset of a broader `\w`-based grammar that would additionally
// accept Unicode word characters. spec.md's classes are the binding
// grammar here.
var grammar = regexp.MustCompile(
	`^(?P<base>[A-Za-z0-9:/._-]+)` +
		`(?:@(?P<version>[A-Za-z0-9./-]+))?` +
		`(?:#(?P<sub_path>[A-Za-z0-9._/-]+))?$`,
)

// Parse parses s according to the grammar `base[@version][#sub_path]`.
// The match is anchored at both ends: trailing garbage is an error rather
// than silently ignored.
func Parse(s string) (Path, error) {
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return Path{}, &ParseError{Input: s}
	}

	p := Path{}
	for i, name := range grammar.SubexpNames() {
		switch name {
		case "base":
			p.Base = m[i]
		case "version":
			p.Version = m[i]
		case "sub_path":
			p.SubPath = m[i]
		}
	}
	return p, nil
}

// HasVersion reports whether a version was specified.
func (p Path) HasVersion() bool { return p.Version != "" }

// HasSubPath reports whether a sub_path was specified.
func (p Path) HasSubPath() bool { return p.SubPath != "" }

// String renders the canonical form, following spec.md §4.2's grammar order
// (base, then @version, then #sub_path). Parse(p.String()) == p for every
// Path producible by Parse.
func (p Path) String() string {
	s := p.Base
	if p.HasVersion() {
		s += "@" + p.Version
	}
	if p.HasSubPath() {
		s += "#" + p.SubPath
	}
	return s
}
