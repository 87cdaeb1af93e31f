package seqbuffer

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// prepare reserves length bytes at the current position and returns the
// offset of the reserved range, advancing the position past it
//
// reads are bounded by the limit and never grow the buffer. Writes are bounded
// by the capacity, when they cross it the store is grown if a growth factor is
// set, otherwise the position is left untouched and ErrCapacityExceeded is
// returned. Growth does not move the limit.
func (b *SequentialBuffer) prepare(length int, write bool) (int, error) {
	if length < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "negative length %d", length)
	}

	if !write {
		if err := b.checkRead(length); err != nil {
			return 0, err
		}
	}

	oldPosition := b.position

	if length > b.capacity-b.position {
		if b.growth == 0 || b.pinned {
			return 0, errors.Wrapf(ErrCapacityExceeded, "write of %d bytes at %d, capacity %d", length, oldPosition, b.capacity)
		}

		if length > math.MaxInt-b.position {
			return 0, errors.Wrapf(ErrCapacityExceeded, "write of %d bytes at %d", length, oldPosition)
		}

		b.grow(b.position + length)
	}

	b.position += length

	if b.observer != nil {
		b.observer.Reserved(length, write)
	}

	return oldPosition, nil
}

// checkRead fails unless length bytes can be read before the limit
func (b *SequentialBuffer) checkRead(length int) error {
	if length < 0 {
		return errors.Wrapf(ErrOutOfRange, "negative length %d", length)
	}

	if length > b.limit-b.position {
		return errors.Wrapf(ErrReadBeyondLimit, "read of %d bytes at %d, limit %d", length, b.position, b.limit)
	}

	return nil
}

// grow replaces the store with one of at least required bytes
//
// the old and the new store are both alive while the content is copied, so
// the peak memory use of a growth is the sum of both capacities.
func (b *SequentialBuffer) grow(required int) {
	old := b.buffer
	capacity := b.capacity

	for capacity < required {
		f := float64(capacity) * b.growth
		if f >= float64(math.MaxInt) {
			capacity = required
			break
		}

		next := int(f)
		if next <= capacity {
			next = capacity + 1
		}
		capacity = next
	}

	b.buffer = make([]byte, capacity)
	copy(b.buffer, old)
	b.capacity = capacity

	if logging {
		logger.Info("grew buffer",
			zap.Int("from", len(old)),
			zap.Int("to", capacity),
			zap.Int("peak", len(old)+capacity),
			zap.Float64("factor", b.growth),
		)
	}

	if b.observer != nil {
		b.observer.Grown(len(old), capacity)
	}
}

// peek returns the next length readable bytes without reserving them
func (b *SequentialBuffer) peek(length int) ([]byte, error) {
	if err := b.checkRead(length); err != nil {
		return nil, err
	}

	return b.buffer[b.position : b.position+length : b.position+length], nil
}

// next reserves length bytes for reading and returns them as a slice of the store
func (b *SequentialBuffer) next(length int) ([]byte, error) {
	o, err := b.prepare(length, false)
	if err != nil {
		return nil, err
	}

	return b.buffer[o : o+length : o+length], nil
}

// reserve reserves length bytes for writing and returns them as a slice of the store
func (b *SequentialBuffer) reserve(length int) ([]byte, error) {
	o, err := b.prepare(length, true)
	if err != nil {
		return nil, err
	}

	return b.buffer[o : o+length : o+length], nil
}
