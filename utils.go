package ingestx

import "iter"

func indexInto[T any, K comparable](result map[K]T, seq iter.Seq[T], keyFn KeyFunc[T, K]) (map[K]T, error) {
	index := 0
	for item := range seq {
		key, ok, err := keyFn(item)
		if err != nil {
			return nil, NewKeyExtractionFailedError(index, err)
		}
		index++

		if !ok {
			continue
		}

		if _, exists := result[key]; !exists {
			result[key] = item
		}
	}

	return result, nil
}

// groupInto appends each keyed item of seq to its group in result. When
// trackOrder is set, it also returns the keys in order of first appearance.
func groupInto[T any, K comparable](result map[K][]T, seq iter.Seq[T], keyFn KeyFunc[T, K], trackOrder bool) ([]K, error) {
	var keys []K

	index := 0
	for item := range seq {
		key, ok, err := keyFn(item)
		if err != nil {
			return nil, NewKeyExtractionFailedError(index, err)
		}
		index++

		if !ok {
			continue
		}

		group, exists := result[key]
		if !exists && trackOrder {
			keys = append(keys, key)
		}

		result[key] = append(group, item)
	}

	return keys, nil
}
