package xjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Put("z", 1)
	o.Put("a", 2)
	o.Put("m", 3)

	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())
}

func TestObjectPutOverwriteKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Put("a", 1)
	o.Put("b", 2)
	o.Put("a", 99)

	assert.Equal(t, []string{"a", "b"}, o.Keys())
	assert.Equal(t, Value(99), o.Get("a"))
}

func TestObjectRemove(t *testing.T) {
	o := NewObject()
	o.Put("a", 1)
	o.Put("b", 2)
	o.Remove("a")

	assert.False(t, o.Has("a"))
	assert.Equal(t, []string{"b"}, o.Keys())
	assert.Equal(t, 1, o.Len())
}

func TestMarshalJSONPreservesKeyOrder(t *testing.T) {
	o := NewObject()
	o.Put("z", 1)
	o.Put("a", "x")

	out, err := MarshalJSON(o)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x"}`, string(out))
}

func TestMarshalJSONArray(t *testing.T) {
	out, err := MarshalJSON(Array{1, "two", true, nil})
	require.NoError(t, err)
	assert.Equal(t, `[1,"two",true,null]`, string(out))
}
