package seqbuffer

import "io"

// Buffer defines an abstraction for an object that allows reading and
// writing binary values through a single moving position
//
// the fixed width accessors use the byte order set with SetOrder.
type Buffer interface {
	io.Reader
	io.Writer
	Tell() int
	Seek(int) error
	Remaining() int
	Order() ByteOrder
	SetOrder(ByteOrder) *SequentialBuffer
	Finalize() []byte
	NextInt8() (int8, error)
	NextUint8() (uint8, error)
	NextInt16() (int16, error)
	NextUint16() (uint16, error)
	NextInt32() (int32, error)
	NextUint32() (uint32, error)
	NextInt64() (int64, error)
	NextUint64() (uint64, error)
	NextFloat32() (float32, error)
	NextFloat64() (float64, error)
	NextBuffer(int) ([]byte, error)
	NextString(int) (string, error)
	WriteInt8(int8) error
	WriteUint8(uint8) error
	WriteInt16(int16) error
	WriteUint16(uint16) error
	WriteInt32(int32) error
	WriteUint32(uint32) error
	WriteInt64(int64) error
	WriteUint64(uint64) error
	WriteFloat32(float32) error
	WriteFloat64(float64) error
	WriteBuffer([]byte) error
	WriteString(string) error
}

var (
	_ Buffer = (*SequentialBuffer)(nil)
	_ Buffer = (*MemoryMappedBuffer)(nil)
)
