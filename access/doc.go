// Package access provides positional access into text, numbers read as digit
// sequences, and composites: element lookup, first and last members, slices,
// key ranges, lengths, deep copies and type names.
//
// Apart from DropLast, accessors never modify their input; members taken out
// of a composite are returned in a new sequence or *document.Object.
package access
