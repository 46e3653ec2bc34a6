// Package ingestx provides generic helpers for ingesting decoded payloads:
// keyed indexing and grouping of collections, typed ingestion errors and
// checked downcasts.
package ingestx

import (
	"iter"
	"slices"
)

// KeyFunc extracts the key of an item. When ok is false, the item has no key
// and is left out of the result. A non-nil err aborts the whole operation.
type KeyFunc[T any, K comparable] func(item T) (key K, ok bool, err error)

// By builds a KeyFunc from a function that always yields a key.
func By[T any, K comparable](fn func(item T) K) KeyFunc[T, K] {
	return func(item T) (K, bool, error) {
		return fn(item), true, nil
	}
}

// ByOK builds a KeyFunc from a function that may yield no key.
func ByOK[T any, K comparable](fn func(item T) (K, bool)) KeyFunc[T, K] {
	return func(item T) (K, bool, error) {
		key, ok := fn(item)
		return key, ok, nil
	}
}

// ByErr builds a KeyFunc from a function that may fail.
func ByErr[T any, K comparable](fn func(item T) (K, error)) KeyFunc[T, K] {
	return func(item T) (K, bool, error) {
		key, err := fn(item)
		if err != nil {
			return key, false, err
		}
		return key, true, nil
	}
}

// Group is a key and the items that produced it, in source order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// IndexBy maps each key to the first item of collection producing it.
// Later items with the same key are dropped. Items without a key are skipped.
// If keyFn fails, IndexBy returns a nil map and a KeyExtractionFailedError.
func IndexBy[T any, K comparable](collection []T, keyFn KeyFunc[T, K]) (map[K]T, error) {
	return indexInto(make(map[K]T, len(collection)), slices.Values(collection), keyFn)
}

// IndexBySeq is like IndexBy but accepts any sequence. Use Entries to index
// the pairs of a map or of an iter.Seq2.
func IndexBySeq[T any, K comparable](seq iter.Seq[T], keyFn KeyFunc[T, K]) (map[K]T, error) {
	return indexInto(map[K]T{}, seq, keyFn)
}

// GroupBy maps each key to every item of collection producing it, in the
// order they were encountered. Items without a key are skipped.
// If keyFn fails, GroupBy returns a nil map and a KeyExtractionFailedError.
func GroupBy[T any, K comparable](collection []T, keyFn KeyFunc[T, K]) (map[K][]T, error) {
	result := make(map[K][]T, len(collection))
	if _, err := groupInto(result, slices.Values(collection), keyFn, false); err != nil {
		return nil, err
	}
	return result, nil
}

// GroupBySeq is like GroupBy but accepts any sequence.
func GroupBySeq[T any, K comparable](seq iter.Seq[T], keyFn KeyFunc[T, K]) (map[K][]T, error) {
	result := map[K][]T{}
	if _, err := groupInto(result, seq, keyFn, false); err != nil {
		return nil, err
	}
	return result, nil
}

// OrderedGroupBy is like GroupBy but returns the groups ordered by the first
// appearance of their key in collection.
func OrderedGroupBy[T any, K comparable](collection []T, keyFn KeyFunc[T, K]) ([]Group[K, T], error) {
	return orderedGroups(make(map[K][]T, len(collection)), slices.Values(collection), keyFn)
}

// OrderedGroupBySeq is like OrderedGroupBy but accepts any sequence.
func OrderedGroupBySeq[T any, K comparable](seq iter.Seq[T], keyFn KeyFunc[T, K]) ([]Group[K, T], error) {
	return orderedGroups(map[K][]T{}, seq, keyFn)
}

func orderedGroups[T any, K comparable](groups map[K][]T, seq iter.Seq[T], keyFn KeyFunc[T, K]) ([]Group[K, T], error) {
	keys, err := groupInto(groups, seq, keyFn, true)
	if err != nil {
		return nil, err
	}

	var result []Group[K, T]
	if len(keys) > 0 {
		result = make([]Group[K, T], 0, len(keys))
	}
	for _, key := range keys {
		result = append(result, Group[K, T]{Key: key, Items: groups[key]})
	}

	return result, nil
}
