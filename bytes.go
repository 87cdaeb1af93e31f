package seqbuffer

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

/*
 * Buffer
 */

// NextBuffer reads length bytes into a newly allocated slice
//
// the result does not share memory with the buffer.
func (b *SequentialBuffer) NextBuffer(length int) ([]byte, error) {
	p, err := b.next(length)
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	copy(data, p)
	return data, nil
}

// MustNextBuffer panics if NextBuffer fails
func (b *SequentialBuffer) MustNextBuffer(length int) []byte {
	data, err := b.NextBuffer(length)
	if err != nil {
		panic(err)
	}
	return data
}

// NextShadowBuffer reads length bytes as a slice aliasing the store
//
// writes through the returned slice are visible in the buffer and the other
// way round. It must not be used once the buffer has grown.
func (b *SequentialBuffer) NextShadowBuffer(length int) ([]byte, error) {
	return b.next(length)
}

// MustNextShadowBuffer panics if NextShadowBuffer fails
func (b *SequentialBuffer) MustNextShadowBuffer(length int) []byte {
	data, err := b.NextShadowBuffer(length)
	if err != nil {
		panic(err)
	}
	return data
}

// WriteBuffer copies data into the buffer
func (b *SequentialBuffer) WriteBuffer(data []byte) error {
	p, err := b.reserve(len(data))
	if err != nil {
		return err
	}

	copy(p, data)
	return nil
}

// MustWriteBuffer panics if WriteBuffer fails
func (b *SequentialBuffer) MustWriteBuffer(data []byte) *SequentialBuffer {
	if err := b.WriteBuffer(data); err != nil {
		panic(err)
	}
	return b
}

// WriteBytes writes the passed bytes in sequence
func (b *SequentialBuffer) WriteBytes(data ...byte) error { return b.WriteBuffer(data) }

// MustWriteBytes panics if WriteBytes fails
func (b *SequentialBuffer) MustWriteBytes(data ...byte) *SequentialBuffer {
	return b.MustWriteBuffer(data)
}

/*
 * io
 */

// Read reads up to len(p) bytes, stopping at the limit
//
// it returns io.EOF once nothing remains.
func (b *SequentialBuffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := len(p)
	if r := b.Remaining(); r < n {
		n = r
	}

	if n <= 0 {
		return 0, io.EOF
	}

	data, err := b.next(n)
	if err != nil {
		return 0, err
	}

	return copy(p, data), nil
}

// Write writes all of data or nothing at all
func (b *SequentialBuffer) Write(data []byte) (int, error) {
	if err := b.WriteBuffer(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// ReadByte reads a single byte, returning io.EOF once nothing remains
func (b *SequentialBuffer) ReadByte() (byte, error) {
	if !b.HasRemaining() {
		return 0, io.EOF
	}
	return b.NextUint8()
}

// WriteByte writes a single byte
func (b *SequentialBuffer) WriteByte(c byte) error { return b.WriteUint8(c) }

// WriteVal writes a fixed size value, or a slice or struct of them, in the
// current byte order
func (b *SequentialBuffer) WriteVal(val interface{}) error {
	return binary.Write(b, b.order.binary(), val)
}

// MustWriteVal panics if WriteVal fails
func (b *SequentialBuffer) MustWriteVal(val interface{}) *SequentialBuffer {
	if err := b.WriteVal(val); err != nil {
		panic(err)
	}
	return b
}

// NextVal reads into a pointer to a fixed size value, or a slice or struct of
// them, in the current byte order
//
// the whole value has to fit before the limit, otherwise nothing is read.
func (b *SequentialBuffer) NextVal(ptr interface{}) error {
	size := binary.Size(ptr)
	if size < 0 {
		return errors.Errorf("cannot read a value of type %T", ptr)
	}

	p, err := b.next(size)
	if err != nil {
		return err
	}

	return binary.Read(bytes.NewReader(p), b.order.binary(), ptr)
}

// MustNextVal panics if NextVal fails
func (b *SequentialBuffer) MustNextVal(ptr interface{}) {
	if err := b.NextVal(ptr); err != nil {
		panic(err)
	}
}
