package ingestx

import (
	"fmt"
	"reflect"
)

// Downcast asserts that source holds a U. On mismatch it returns the zero U
// and a DowncastFailedError located at the function calling Downcast.
// A nil source never matches.
func Downcast[U any](source any) (U, error) {
	return DowncastAt[U](source, Caller(1))
}

// DowncastAt is like Downcast but reports the given call site.
func DowncastAt[U any](source any, caller CallerInfo) (U, error) {
	if result, ok := source.(U); ok {
		return result, nil
	}

	var zero U
	message := fmt.Sprintf("failed downcast from %T to %s", source, reflect.TypeFor[U]())
	return zero, NewDowncastFailedError(message, caller)
}
