// Package path implements the dependency-locator grammar used by the
// `image` key and `proc-block` stage fields in a Runefile:
//
//	base[@version][#sub_path]
//
// base is a repository slug, a bare registry name, or a URL; version and
// sub_path are optional. Parsing is total-or-rejected: a string that
// doesn't match the grammar produces an error rather than a partially
// populated Path.
package path
