package xjson

import (
	"bytes"
	"encoding/json"
	"math/big"
)

// Value is a JSON value: nil, bool, int64, *big.Int, float64, string,
// Array, or *Object. It is never any other dynamic type; the Projection
// Engine and Serializer switch on these eight shapes only.
type Value = any

// Array is an ordered sequence of values.
type Array []Value

// Object is an insertion-ordered map from string keys to values. Equality
// between two Objects should ignore key order; serialization must not.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Put inserts or overwrites key. First insertion fixes the key's position
// in Keys(); overwriting an existing key does not move it.
func (o *Object) Put(key string, val Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// Get returns the value at key, or nil if absent.
func (o *Object) Get(key string) Value {
	return o.vals[key]
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Remove deletes key, preserving the order of the remaining keys.
func (o *Object) Remove(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// ForEach visits every key/value pair in insertion order.
func (o *Object) ForEach(fn func(key string, val Value)) {
	for _, k := range o.keys {
		fn(k, o.vals[k])
	}
}

// MarshalJSON renders the object with keys in insertion order, unlike
// encoding/json's default map handling which would sort them.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalValueJSON(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders v as compact JSON text, preserving Object key
// insertion order at every nesting level.
func MarshalJSON(v Value) ([]byte, error) {
	return marshalValueJSON(v)
}

func marshalValueJSON(v Value) ([]byte, error) {
	switch t := v.(type) {
	case *Object:
		return t.MarshalJSON()
	case *Array:
		return marshalArrayJSON(*t)
	case Array:
		return marshalArrayJSON(t)
	case *big.Int:
		return []byte(t.String()), nil
	default:
		return json.Marshal(v)
	}
}

func marshalArrayJSON(a Array) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		vb, err := marshalValueJSON(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
