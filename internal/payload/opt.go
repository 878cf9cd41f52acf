package payload

// Opt records whether a field was present in a payload, and whether it was
// an explicit null. A zero Opt means the field was not provided.
type Opt[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Value: v}
}

func Null[T any]() Opt[T] {
	return Opt[T]{Set: true, Null: true}
}

// Present reports a provided, non-null value.
func (o Opt[T]) Present() bool {
	return o.Set && !o.Null
}

// Apply overwrites dst when the field was provided. Null resets dst to its zero value.
func (o Opt[T]) Apply(dst *T) {
	if !o.Set {
		return
	}
	if o.Null {
		var zero T
		*dst = zero
		return
	}
	*dst = o.Value
}

// ApplyPtr is Apply for nullable columns. Null clears the pointer.
func (o Opt[T]) ApplyPtr(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}
