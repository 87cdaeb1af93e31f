package seqbuffer

import (
	"math"

	"github.com/pkg/errors"
)

// SequentialBuffer is a byte slice with a position, a limit and a mark
//
// 0 <= position <= capacity and limit <= capacity hold between calls. Reads
// stay below the limit, writes only below the capacity, so a write may move
// the position past the limit until the next Flip or Clear.
type SequentialBuffer struct {
	buffer   []byte
	capacity int
	limit    int
	position int
	mark     int
	order    ByteOrder
	growth   float64
	observer Observer
	pinned   bool // the store can never be replaced, growth stays disabled
}

// NewSequentialBuffer creates a new SequentialBuffer with a zeroed store of
// the specified capacity
func NewSequentialBuffer(capacity int, opts ...Option) (*SequentialBuffer, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "capacity %d, must be at least 1", capacity)
	}

	return newSequentialBuffer(make([]byte, capacity), opts)
}

// NewSequentialBufferSlice creates a new SequentialBuffer over the passed slice
//
// the slice is not copied, the buffer takes ownership of it and the caller
// should not modify it afterwards. Capacity and limit are both len(buffer).
func NewSequentialBufferSlice(buffer []byte, opts ...Option) (*SequentialBuffer, error) {
	if len(buffer) < 1 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "cannot wrap an empty slice")
	}

	return newSequentialBuffer(buffer, opts)
}

func newSequentialBuffer(buffer []byte, opts []Option) (*SequentialBuffer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.order.valid() {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "byte order %v", o.order)
	}

	b := &SequentialBuffer{
		buffer:   buffer,
		capacity: len(buffer),
		limit:    len(buffer),
		order:    o.order,
		observer: o.observer,
	}

	if err := b.AutoGrow(o.growth); err != nil {
		return nil, err
	}

	return b, nil
}

// MustNewSequentialBuffer is a NewSequentialBuffer that panics on error
func MustNewSequentialBuffer(capacity int, opts ...Option) *SequentialBuffer {
	b, err := NewSequentialBuffer(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Capacity returns the length of the current store
func (b *SequentialBuffer) Capacity() int { return b.capacity }

// Limit returns the current limit
func (b *SequentialBuffer) Limit() int { return b.limit }

// Order returns the current byte order
func (b *SequentialBuffer) Order() ByteOrder { return b.order }

// GrowthFactor returns the current growth factor, 0 if growth is disabled
func (b *SequentialBuffer) GrowthFactor() float64 { return b.growth }

// Bytes returns the whole current store, regardless of position and limit
//
// the returned slice aliases the buffer and is only valid until the next growth.
func (b *SequentialBuffer) Bytes() []byte { return b.buffer }

// Seek sets the position of the buffer
func (b *SequentialBuffer) Seek(position int) error {
	if position < 0 || position > b.limit {
		return errors.Wrapf(ErrOutOfRange, "seek to %d, limit %d", position, b.limit)
	}

	b.position = position
	return nil
}

// MustSeek will try to set the position inside the buffer and panic on error
func (b *SequentialBuffer) MustSeek(position int) *SequentialBuffer {
	if err := b.Seek(position); err != nil {
		panic(err)
	}
	return b
}

// Tell returns the current position
func (b *SequentialBuffer) Tell() int { return b.position }

// Rewind sets the position back to 0
func (b *SequentialBuffer) Rewind() *SequentialBuffer {
	b.position = 0
	return b
}

// Flip turns what was just written into a readable region
func (b *SequentialBuffer) Flip() *SequentialBuffer {
	b.limit = b.position
	b.position = 0
	return b
}

// Clear prepares the buffer for writing over its whole capacity
//
// the content is not zeroed.
func (b *SequentialBuffer) Clear() *SequentialBuffer {
	b.limit = b.capacity
	b.position = 0
	return b
}

// Compact moves the unread bytes between position and limit to the start of
// the buffer, positions the cursor right after them and opens the limit to
// the capacity, ready to append more data after the leftovers
//
// with nothing unread, including a position written past the limit, it is a Clear.
func (b *SequentialBuffer) Compact() *SequentialBuffer {
	if b.position >= b.limit {
		return b.Clear()
	}

	copy(b.buffer, b.buffer[b.position:b.limit])
	b.position = b.limit - b.position
	b.limit = b.capacity
	return b
}

// Mark saves the current position
func (b *SequentialBuffer) Mark() *SequentialBuffer {
	b.mark = b.position
	return b
}

// Reset restores the position saved by Mark
func (b *SequentialBuffer) Reset() error {
	if b.mark > b.limit {
		return errors.Wrapf(ErrOutOfRange, "mark %d, limit %d", b.mark, b.limit)
	}

	b.position = b.mark
	return nil
}

// MustReset is a Reset that panics on error
func (b *SequentialBuffer) MustReset() *SequentialBuffer {
	if err := b.Reset(); err != nil {
		panic(err)
	}
	return b
}

// Remaining returns the number of bytes between position and limit
func (b *SequentialBuffer) Remaining() int { return b.limit - b.position }

// HasRemaining reports whether there is anything between position and limit
func (b *SequentialBuffer) HasRemaining() bool { return b.position < b.limit }

// Finalize returns the bytes written so far, [0, position)
//
// the slice aliases the store without copying and leaves the cursor untouched.
// It has its capacity clipped, so appending to it never writes into the buffer.
func (b *SequentialBuffer) Finalize() []byte {
	return b.buffer[0:b.position:b.position]
}

// SetOrder sets the byte order of the order agnostic accessors
func (b *SequentialBuffer) SetOrder(order ByteOrder) *SequentialBuffer {
	b.order = order
	return b
}

// AutoGrow sets the growth factor
//
// 0 disables growth, anything else has to be a finite number greater than 1,
// otherwise growth could never terminate.
func (b *SequentialBuffer) AutoGrow(factor float64) error {
	if err := validateGrowthFactor(factor); err != nil {
		return err
	}

	if b.pinned && factor != 0 {
		return errors.Wrap(ErrInvalidConfiguration, "cannot grow a buffer whose store is pinned")
	}

	b.growth = factor
	return nil
}

// SetAutoGrow enables growth by doubling if true is passed
// and disables it if false is passed
//
// enabling has no effect on a buffer whose store is pinned, such as a
// MemoryMappedBuffer.
func (b *SequentialBuffer) SetAutoGrow(enable bool) *SequentialBuffer {
	if b.pinned {
		enable = false
	}

	b.growth = growthFactorFromBool(enable)
	return b
}

func growthFactorFromBool(enable bool) float64 {
	if enable {
		return 2
	}
	return 0
}

func validateGrowthFactor(factor float64) error {
	switch {
	case factor == 0:
		return nil
	case factor == 1:
		return errors.Wrap(ErrInvalidConfiguration, "cannot use 1 as growth factor")
	case math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "growth factor %v, must be 0 or greater than 1", factor)
	}
	return nil
}
