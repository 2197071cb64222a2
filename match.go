package treewalk

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/gobwas/glob"
	"github.com/viant/treewalk/conv"
)

// filterEnv represents variables available to a filter expression
type filterEnv struct {
	Key     string  `expr:"key"`
	Value   any     `expr:"value"`
	Path    string  `expr:"path"`
	Depth   int     `expr:"depth"`
	Leaf    bool    `expr:"leaf"`
	Number  float64 `expr:"number"`
	Numeric bool    `expr:"numeric"`
}

func newFilterEnv(property *Property) filterEnv {
	number, numeric := conv.AsFloat(property.Value)
	return filterEnv{
		Key:     property.Key,
		Value:   property.Value,
		Path:    property.Path.String(),
		Depth:   property.Path.Depth(),
		Leaf:    property.Leaf,
		Number:  number,
		Numeric: numeric,
	}
}

// Select returns dot paths matching glob pattern, '*' matches within a single key, '**' across keys
func Select(obj any, pattern string) ([]string, error) {
	matcher, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	paths := []string{}
	ok := Traverse(obj, func(property *Property) bool {
		if path := property.Path.String(); matcher.Match(path) {
			paths = append(paths, path)
		}
		return true
	})
	if !ok {
		return nil, ErrNotApplicable
	}
	return paths, nil
}

// Filter returns dot paths of properties for which the boolean expression holds.
// The expression sees key, value, path, depth, leaf, number and numeric;
// properties the expression fails to evaluate on are skipped.
func Filter(obj any, expression string) ([]string, error) {
	program, err := compileFilter(expression)
	if err != nil {
		return nil, err
	}
	paths := []string{}
	ok := Traverse(obj, func(property *Property) bool {
		output, err := expr.Run(program, newFilterEnv(property))
		if err != nil {
			return true
		}
		if matched, _ := output.(bool); matched {
			paths = append(paths, property.Path.String())
		}
		return true
	})
	if !ok {
		return nil, ErrNotApplicable
	}
	return paths, nil
}

func compileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}
	return program, nil
}
