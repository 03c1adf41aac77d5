package ladder

// Binding is a read/write cell a component body may wrap. The host owns
// the state discipline; bodies capture bindings in their thunks so every
// re-evaluation observes the current value.
type Binding[T any] struct {
	get func() T
	set func(T)
}

// Bind wraps a pointer as a binding.
func Bind[T any](ptr *T) Binding[T] {
	return Binding[T]{
		get: func() T { return *ptr },
		set: func(v T) { *ptr = v },
	}
}

// BindFunc builds a binding from explicit accessors.
func BindFunc[T any](get func() T, set func(T)) Binding[T] {
	return Binding[T]{get: get, set: set}
}

// Get returns the current value. The zero binding reads the zero value.
func (b Binding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

// Set stores a value. The zero binding discards it.
func (b Binding[T]) Set(v T) {
	if b.set != nil {
		b.set(v)
	}
}
