package treewalk

import "github.com/viant/treewalk/visitor"

type (
	// VisitFunc receives a property key and value
	VisitFunc func(key string, value any)

	// Property represents a visited property.
	// Path shares the traversal buffer, use Path.Clone to retain it after the callback returns.
	Property struct {
		Path   Path
		Key    string
		Value  any
		Holder any
		Leaf   bool
	}

	// PropertyFunc receives visited property, returning false stops the traversal
	PropertyFunc func(property *Property) bool

	traversal struct {
		fn      PropertyFunc
		path    Path
		stopped bool
	}
)

// Walk traverses root depth-first in pre-order. For every property onEnter is
// called first; non-null composite values are then descended into, any other
// value is passed to onLeaf. Nil callbacks are skipped.
// It returns false without calling anything when root is not a composite.
func Walk(root any, onEnter, onLeaf VisitFunc) bool {
	visit, ok := visitor.Of(root)
	if !ok {
		return false
	}
	walk(visit, onEnter, onLeaf)
	return true
}

func walk(visit visitor.Visitor[string, any], onEnter, onLeaf VisitFunc) {
	_ = visit(func(key string, value any) (bool, error) {
		if onEnter != nil {
			onEnter(key, value)
		}
		if child, ok := visitor.Of(value); ok {
			walk(child, onEnter, onLeaf)
		} else if onLeaf != nil {
			onLeaf(key, value)
		}
		return true, nil
	})
}

// Traverse visits root like Walk, additionally tracking the path and the holding
// composite of every property. A property is reported before its value is descended into;
// returning false stops the whole traversal.
func Traverse(root any, fn PropertyFunc) bool {
	visit, ok := visitor.Of(root)
	if !ok {
		return false
	}
	t := &traversal{fn: fn}
	t.traverse(root, visit)
	return true
}

func (t *traversal) traverse(holder any, visit visitor.Visitor[string, any]) {
	_ = visit(func(key string, value any) (bool, error) {
		t.path = append(t.path, key)
		child, composite := visitor.Of(value)
		property := &Property{Path: t.path, Key: key, Value: value, Holder: holder, Leaf: !composite}
		if !t.fn(property) {
			t.stopped = true
		} else if composite {
			t.traverse(value, child)
		}
		t.path = t.path[:len(t.path)-1]
		return !t.stopped, nil
	})
}
