// Package treewalk provides a depth-first walker over nested documents and the
// extraction and search operations built on it.
//
// A composite is a *document.Object, a slice or array, a map with string keys,
// or a struct; every other value, including time.Time, is a leaf. Traversal is
// pre-order and follows each composite's own enumeration order. There is no
// cycle detection: a structure that contains itself recurses without bound.
package treewalk
