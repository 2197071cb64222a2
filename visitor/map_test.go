package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	var aMap = map[string]bool{
		"def": true,
		"abc": false,
		"xyz": true,
	}

	{
		var keys []string
		cloned := make(map[string]bool)
		visit := MapVisitorOf[string, bool](aMap)
		err := visit(func(key string, element bool) (bool, error) {
			keys = append(keys, key)
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
		assert.Equal(t, []string{"abc", "def", "xyz"}, keys)
	}
	{
		visit, err := AnyMapVisitorOf(aMap)
		assert.Nil(t, err)
		var keys []string
		_ = visit(func(key string, element any) (bool, error) {
			keys = append(keys, key)
			return key != "def", nil
		})
		assert.Equal(t, []string{"abc", "def"}, keys)
	}
	{
		type named map[string]float32
		visit, err := AnyMapVisitorOf(named{"b": 2, "a": 1})
		assert.Nil(t, err)
		var values []any
		_ = visit(func(key string, element any) (bool, error) {
			values = append(values, element)
			return true, nil
		})
		assert.Equal(t, []any{float32(1), float32(2)}, values)
	}
	{
		_, err := AnyMapVisitorOf(map[float64]float64{1: 1})
		assert.NotNil(t, err)
	}
}
