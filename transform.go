package ingestx

// ValueTransformer converts one value into another.
type ValueTransformer interface {
	TransformValue(value any) any
}

// TransformerFunc adapts a function to a ValueTransformer.
type TransformerFunc func(value any) any

func (fn TransformerFunc) TransformValue(value any) any {
	return fn(value)
}

// Transformers applies its elements one after the other.
type Transformers []ValueTransformer

// Apply passes value through every transformer in order, feeding each
// output to the next. An empty list returns value unchanged.
func (ts Transformers) Apply(value any) any {
	result := value
	for _, t := range ts {
		result = t.TransformValue(result)
	}
	return result
}

// Pipe composes fns left to right.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for _, fn := range fns {
			value = fn(value)
		}
		return value
	}
}

// TransformValue implements ValueTransformer, so chains can be nested.
func (ts Transformers) TransformValue(value any) any {
	return ts.Apply(value)
}
