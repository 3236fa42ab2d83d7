package response

// Owned bundles a response buffer with the value parsed from it.
//
// The value may hold slices of the buffer, so the buffer must never be modified
// once it has been handed over: callers give up the buffer when they call a
// function returning an Owned, and only read the value afterwards.
type Owned[T any] struct {
	buffer []byte
	value  T
}

// NewOwned runs derive over the buffer and keeps both together.
// The error is the one returned by derive.
func NewOwned[T any](buffer []byte, derive func([]byte) (T, error)) (*Owned[T], error) {
	value, err := derive(buffer)
	if err != nil {
		return nil, err
	}
	return &Owned[T]{
		buffer: buffer,
		value:  value,
	}, nil
}

// Value returns the parsed value.
func (o *Owned[T]) Value() T {
	return o.value
}

// Bytes returns the buffer the value was parsed from. It must not be modified.
func (o *Owned[T]) Bytes() []byte {
	return o.buffer
}
