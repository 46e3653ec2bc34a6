package ingestx

import "iter"

// Entry is a key-value pair, as yielded by Entries.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Entries turns a pair sequence, such as maps.All(m), into a sequence of
// Entry so it can be indexed or grouped. Map iteration order is random, so
// "first item wins" picks an arbitrary entry among duplicates of a map.
func Entries[K any, V any](seq iter.Seq2[K, V]) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range seq {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}
