package domain

import (
	"bytes"
	"encoding/json"
)

// Keyed is an id -> value mapping that remembers insertion order.
// The zero value is ready to use.
type Keyed[T any] struct {
	keys   []string
	values map[string]*T
}

// GetOrCreate returns the value stored under key, inserting init() first if the key is new.
func (k *Keyed[T]) GetOrCreate(key string, init func() T) *T {
	if v, ok := k.values[key]; ok {
		return v
	}
	if k.values == nil {
		k.values = make(map[string]*T)
	}
	v := init()
	k.values[key] = &v
	k.keys = append(k.keys, key)
	return &v
}

// Each visits every value in insertion order and may modify it in place.
func (k *Keyed[T]) Each(fn func(key string, v *T)) {
	for _, key := range k.keys {
		fn(key, k.values[key])
	}
}

func (k Keyed[T]) Get(key string) (T, bool) {
	v, ok := k.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	return *v, true
}

func (k Keyed[T]) Len() int {
	return len(k.keys)
}

func (k Keyed[T]) Keys() []string {
	out := make([]string, len(k.keys))
	copy(out, k.keys)
	return out
}

// Values returns copies of the stored values in insertion order.
func (k Keyed[T]) Values() []T {
	out := make([]T, 0, len(k.keys))
	for _, key := range k.keys {
		out = append(out, *k.values[key])
	}
	return out
}

// MarshalJSON writes a JSON object whose keys follow insertion order.
func (k Keyed[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range k.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(k.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
