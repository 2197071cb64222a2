// Package is provides type and value predicates over document nodes.
//
// Predicates that cannot decide for their input return (result, ok) with ok
// set to false, e.g. Even for a non integer or XML for a non string.
package is
