// Package orderedmap provides a typed insertion-ordered map. Storage is
// delegated to wk8/go-ordered-map; this wrapper adds type safety for the
// registries and accumulators used by the parser.
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order. Overwriting an
// existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	om *wk8.OrderedMap
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: wk8.New()}
}

// Set stores a key-value pair and returns the previous value for the key, if
// any.
func (o *OrderedMap[K, V]) Set(key K, value V) (V, bool) {
	prev, present := o.om.Set(key, value)
	if !present {
		var zero V
		return zero, false
	}
	return prev.(V), true
}

// Get returns the value stored for key.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.om.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Delete removes key and returns the value it held, if any.
func (o *OrderedMap[K, V]) Delete(key K) (V, bool) {
	v, ok := o.om.Delete(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Len returns the number of stored pairs.
func (o *OrderedMap[K, V]) Len() int {
	return o.om.Len()
}

// ForEach visits pairs in insertion order until fn returns false.
func (o *OrderedMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(K), pair.Value.(V)) {
			return
		}
	}
}

// Keys returns the keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.om.Len())
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(K))
	}
	return keys
}

// Values returns the values in insertion order.
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.om.Len())
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value.(V))
	}
	return values
}
