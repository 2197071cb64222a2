// Package document defines the node model shared by the traversal packages:
// an insertion ordered Object for mappings, []any for sequences and plain Go
// scalars for leaves. It decodes JSON and YAML (ordered) and msgpack into that
// model and encodes it back with key order preserved.
package document
