package settings

// Accessor binds a field to live state through a getter and a setter.
//
// Getters must be pure reads so a renderer can call them any number of
// times during a pass. Setters are the only channel through which the
// settings tree mutates state.
type Accessor[T any] struct {
	get func() T
	set func(T)
}

// NewAccessor returns an accessor over the given getter and setter.
func NewAccessor[T any](get func() T, set func(T)) Accessor[T] {
	return Accessor[T]{get: get, set: set}
}

// Get reads the current value.
func (a Accessor[T]) Get() T {
	return a.get()
}

// Set writes v.
func (a Accessor[T]) Set(v T) {
	a.set(v)
}

func (a Accessor[T]) bound() bool {
	return a.get != nil && a.set != nil
}
