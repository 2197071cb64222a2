// Package visitor offers generic visitors for common container types.
// It provides iteration over ordered documents, structs, maps, and slices,
// with simple callback-based traversal, and decides which values are
// composites worth descending into.
package visitor
