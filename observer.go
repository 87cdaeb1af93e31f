package seqbuffer

// Observer receives notifications from a SequentialBuffer
//
// an Observer can be shared by many buffers, in which case it is expected to
// synchronize itself. Calls are made synchronously from within the buffer
// operation, so they must not call back into the same buffer.
type Observer interface {
	// Reserved is called after every successful reservation
	Reserved(length int, write bool)

	// Grown is called after the store was replaced by a larger one
	Grown(from, to int)
}
