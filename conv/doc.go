// Package conv provides the scalar coercion rules used when comparing and
// inspecting node values: numeric conversion of strings and booleans,
// primitive string rendering, and the loose equality policy used by searches.
package conv
