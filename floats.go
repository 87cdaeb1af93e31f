package seqbuffer

import (
	"encoding/binary"
	"math"
)

/*
 * Float & Double
 */

// NextFloat32BE reads a float32 in big endian order
func (b *SequentialBuffer) NextFloat32BE() (float32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
}

// MustNextFloat32BE panics if NextFloat32BE fails
func (b *SequentialBuffer) MustNextFloat32BE() float32 {
	val, err := b.NextFloat32BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat32BE writes a float32 in big endian order
func (b *SequentialBuffer) WriteFloat32BE(val float32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(p, math.Float32bits(val))
	return nil
}

// MustWriteFloat32BE panics if WriteFloat32BE fails
func (b *SequentialBuffer) MustWriteFloat32BE(val float32) *SequentialBuffer {
	if err := b.WriteFloat32BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextFloat32LE reads a float32 in little endian order
func (b *SequentialBuffer) NextFloat32LE() (float32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(p)), nil
}

// MustNextFloat32LE panics if NextFloat32LE fails
func (b *SequentialBuffer) MustNextFloat32LE() float32 {
	val, err := b.NextFloat32LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat32LE writes a float32 in little endian order
func (b *SequentialBuffer) WriteFloat32LE(val float32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(p, math.Float32bits(val))
	return nil
}

// MustWriteFloat32LE panics if WriteFloat32LE fails
func (b *SequentialBuffer) MustWriteFloat32LE(val float32) *SequentialBuffer {
	if err := b.WriteFloat32LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextFloat32 reads a float32 in the current byte order
func (b *SequentialBuffer) NextFloat32() (float32, error) {
	if b.order == BigEndian {
		return b.NextFloat32BE()
	}
	return b.NextFloat32LE()
}

// MustNextFloat32 panics if NextFloat32 fails
func (b *SequentialBuffer) MustNextFloat32() float32 {
	val, err := b.NextFloat32()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat32 writes a float32 in the current byte order
func (b *SequentialBuffer) WriteFloat32(val float32) error {
	if b.order == BigEndian {
		return b.WriteFloat32BE(val)
	}
	return b.WriteFloat32LE(val)
}

// MustWriteFloat32 panics if WriteFloat32 fails
func (b *SequentialBuffer) MustWriteFloat32(val float32) *SequentialBuffer {
	if err := b.WriteFloat32(val); err != nil {
		panic(err)
	}
	return b
}

// NextFloat64BE reads a float64 in big endian order
func (b *SequentialBuffer) NextFloat64BE() (float64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

// MustNextFloat64BE panics if NextFloat64BE fails
func (b *SequentialBuffer) MustNextFloat64BE() float64 {
	val, err := b.NextFloat64BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat64BE writes a float64 in big endian order
func (b *SequentialBuffer) WriteFloat64BE(val float64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(p, math.Float64bits(val))
	return nil
}

// MustWriteFloat64BE panics if WriteFloat64BE fails
func (b *SequentialBuffer) MustWriteFloat64BE(val float64) *SequentialBuffer {
	if err := b.WriteFloat64BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextFloat64LE reads a float64 in little endian order
func (b *SequentialBuffer) NextFloat64LE() (float64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(p)), nil
}

// MustNextFloat64LE panics if NextFloat64LE fails
func (b *SequentialBuffer) MustNextFloat64LE() float64 {
	val, err := b.NextFloat64LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat64LE writes a float64 in little endian order
func (b *SequentialBuffer) WriteFloat64LE(val float64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(p, math.Float64bits(val))
	return nil
}

// MustWriteFloat64LE panics if WriteFloat64LE fails
func (b *SequentialBuffer) MustWriteFloat64LE(val float64) *SequentialBuffer {
	if err := b.WriteFloat64LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextFloat64 reads a float64 in the current byte order
func (b *SequentialBuffer) NextFloat64() (float64, error) {
	if b.order == BigEndian {
		return b.NextFloat64BE()
	}
	return b.NextFloat64LE()
}

// MustNextFloat64 panics if NextFloat64 fails
func (b *SequentialBuffer) MustNextFloat64() float64 {
	val, err := b.NextFloat64()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteFloat64 writes a float64 in the current byte order
func (b *SequentialBuffer) WriteFloat64(val float64) error {
	if b.order == BigEndian {
		return b.WriteFloat64BE(val)
	}
	return b.WriteFloat64LE(val)
}

// MustWriteFloat64 panics if WriteFloat64 fails
func (b *SequentialBuffer) MustWriteFloat64(val float64) *SequentialBuffer {
	if err := b.WriteFloat64(val); err != nil {
		panic(err)
	}
	return b
}
