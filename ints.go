package seqbuffer

import "encoding/binary"

/*
 * 8 bits
 */

// NextInt8 reads an int8
func (b *SequentialBuffer) NextInt8() (int8, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return int8(p[0]), nil
}

// MustNextInt8 panics if NextInt8 fails
func (b *SequentialBuffer) MustNextInt8() int8 {
	val, err := b.NextInt8()
	if err != nil {
		panic(err)
	}
	return val
}

// NextUint8 reads a single byte
func (b *SequentialBuffer) NextUint8() (uint8, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// MustNextUint8 panics if NextUint8 fails
func (b *SequentialBuffer) MustNextUint8() uint8 {
	val, err := b.NextUint8()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt8 writes an int8
func (b *SequentialBuffer) WriteInt8(val int8) error {
	p, err := b.reserve(1)
	if err != nil {
		return err
	}
	p[0] = byte(val)
	return nil
}

// MustWriteInt8 panics if WriteInt8 fails
func (b *SequentialBuffer) MustWriteInt8(val int8) *SequentialBuffer {
	if err := b.WriteInt8(val); err != nil {
		panic(err)
	}
	return b
}

// WriteUint8 writes a single byte
func (b *SequentialBuffer) WriteUint8(val uint8) error {
	p, err := b.reserve(1)
	if err != nil {
		return err
	}
	p[0] = val
	return nil
}

// MustWriteUint8 panics if WriteUint8 fails
func (b *SequentialBuffer) MustWriteUint8(val uint8) *SequentialBuffer {
	if err := b.WriteUint8(val); err != nil {
		panic(err)
	}
	return b
}

/*
 * 16 bits
 */

// NextInt16BE reads an int16 in big endian order
func (b *SequentialBuffer) NextInt16BE() (int16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

// MustNextInt16BE panics if NextInt16BE fails
func (b *SequentialBuffer) MustNextInt16BE() int16 {
	val, err := b.NextInt16BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt16BE writes an int16 in big endian order
func (b *SequentialBuffer) WriteInt16BE(val int16) error {
	p, err := b.reserve(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(p, uint16(val))
	return nil
}

// MustWriteInt16BE panics if WriteInt16BE fails
func (b *SequentialBuffer) MustWriteInt16BE(val int16) *SequentialBuffer {
	if err := b.WriteInt16BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt16LE reads an int16 in little endian order
func (b *SequentialBuffer) NextInt16LE() (int16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(p)), nil
}

// MustNextInt16LE panics if NextInt16LE fails
func (b *SequentialBuffer) MustNextInt16LE() int16 {
	val, err := b.NextInt16LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt16LE writes an int16 in little endian order
func (b *SequentialBuffer) WriteInt16LE(val int16) error {
	p, err := b.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(p, uint16(val))
	return nil
}

// MustWriteInt16LE panics if WriteInt16LE fails
func (b *SequentialBuffer) MustWriteInt16LE(val int16) *SequentialBuffer {
	if err := b.WriteInt16LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt16 reads an int16 in the current byte order
func (b *SequentialBuffer) NextInt16() (int16, error) {
	if b.order == BigEndian {
		return b.NextInt16BE()
	}
	return b.NextInt16LE()
}

// MustNextInt16 panics if NextInt16 fails
func (b *SequentialBuffer) MustNextInt16() int16 {
	val, err := b.NextInt16()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt16 writes an int16 in the current byte order
func (b *SequentialBuffer) WriteInt16(val int16) error {
	if b.order == BigEndian {
		return b.WriteInt16BE(val)
	}
	return b.WriteInt16LE(val)
}

// MustWriteInt16 panics if WriteInt16 fails
func (b *SequentialBuffer) MustWriteInt16(val int16) *SequentialBuffer {
	if err := b.WriteInt16(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint16BE reads an uint16 in big endian order
func (b *SequentialBuffer) NextUint16BE() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// MustNextUint16BE panics if NextUint16BE fails
func (b *SequentialBuffer) MustNextUint16BE() uint16 {
	val, err := b.NextUint16BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint16BE writes an uint16 in big endian order
func (b *SequentialBuffer) WriteUint16BE(val uint16) error {
	p, err := b.reserve(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(p, val)
	return nil
}

// MustWriteUint16BE panics if WriteUint16BE fails
func (b *SequentialBuffer) MustWriteUint16BE(val uint16) *SequentialBuffer {
	if err := b.WriteUint16BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint16LE reads an uint16 in little endian order
func (b *SequentialBuffer) NextUint16LE() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// MustNextUint16LE panics if NextUint16LE fails
func (b *SequentialBuffer) MustNextUint16LE() uint16 {
	val, err := b.NextUint16LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint16LE writes an uint16 in little endian order
func (b *SequentialBuffer) WriteUint16LE(val uint16) error {
	p, err := b.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(p, val)
	return nil
}

// MustWriteUint16LE panics if WriteUint16LE fails
func (b *SequentialBuffer) MustWriteUint16LE(val uint16) *SequentialBuffer {
	if err := b.WriteUint16LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint16 reads an uint16 in the current byte order
func (b *SequentialBuffer) NextUint16() (uint16, error) {
	if b.order == BigEndian {
		return b.NextUint16BE()
	}
	return b.NextUint16LE()
}

// MustNextUint16 panics if NextUint16 fails
func (b *SequentialBuffer) MustNextUint16() uint16 {
	val, err := b.NextUint16()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint16 writes an uint16 in the current byte order
func (b *SequentialBuffer) WriteUint16(val uint16) error {
	if b.order == BigEndian {
		return b.WriteUint16BE(val)
	}
	return b.WriteUint16LE(val)
}

// MustWriteUint16 panics if WriteUint16 fails
func (b *SequentialBuffer) MustWriteUint16(val uint16) *SequentialBuffer {
	if err := b.WriteUint16(val); err != nil {
		panic(err)
	}
	return b
}

/*
 * 32 bits
 */

// NextInt32BE reads an int32 in big endian order
func (b *SequentialBuffer) NextInt32BE() (int32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

// MustNextInt32BE panics if NextInt32BE fails
func (b *SequentialBuffer) MustNextInt32BE() int32 {
	val, err := b.NextInt32BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt32BE writes an int32 in big endian order
func (b *SequentialBuffer) WriteInt32BE(val int32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(p, uint32(val))
	return nil
}

// MustWriteInt32BE panics if WriteInt32BE fails
func (b *SequentialBuffer) MustWriteInt32BE(val int32) *SequentialBuffer {
	if err := b.WriteInt32BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt32LE reads an int32 in little endian order
func (b *SequentialBuffer) NextInt32LE() (int32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(p)), nil
}

// MustNextInt32LE panics if NextInt32LE fails
func (b *SequentialBuffer) MustNextInt32LE() int32 {
	val, err := b.NextInt32LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt32LE writes an int32 in little endian order
func (b *SequentialBuffer) WriteInt32LE(val int32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(p, uint32(val))
	return nil
}

// MustWriteInt32LE panics if WriteInt32LE fails
func (b *SequentialBuffer) MustWriteInt32LE(val int32) *SequentialBuffer {
	if err := b.WriteInt32LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt32 reads an int32 in the current byte order
func (b *SequentialBuffer) NextInt32() (int32, error) {
	if b.order == BigEndian {
		return b.NextInt32BE()
	}
	return b.NextInt32LE()
}

// MustNextInt32 panics if NextInt32 fails
func (b *SequentialBuffer) MustNextInt32() int32 {
	val, err := b.NextInt32()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt32 writes an int32 in the current byte order
func (b *SequentialBuffer) WriteInt32(val int32) error {
	if b.order == BigEndian {
		return b.WriteInt32BE(val)
	}
	return b.WriteInt32LE(val)
}

// MustWriteInt32 panics if WriteInt32 fails
func (b *SequentialBuffer) MustWriteInt32(val int32) *SequentialBuffer {
	if err := b.WriteInt32(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint32BE reads an uint32 in big endian order
func (b *SequentialBuffer) NextUint32BE() (uint32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// MustNextUint32BE panics if NextUint32BE fails
func (b *SequentialBuffer) MustNextUint32BE() uint32 {
	val, err := b.NextUint32BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint32BE writes an uint32 in big endian order
func (b *SequentialBuffer) WriteUint32BE(val uint32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(p, val)
	return nil
}

// MustWriteUint32BE panics if WriteUint32BE fails
func (b *SequentialBuffer) MustWriteUint32BE(val uint32) *SequentialBuffer {
	if err := b.WriteUint32BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint32LE reads an uint32 in little endian order
func (b *SequentialBuffer) NextUint32LE() (uint32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// MustNextUint32LE panics if NextUint32LE fails
func (b *SequentialBuffer) MustNextUint32LE() uint32 {
	val, err := b.NextUint32LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint32LE writes an uint32 in little endian order
func (b *SequentialBuffer) WriteUint32LE(val uint32) error {
	p, err := b.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(p, val)
	return nil
}

// MustWriteUint32LE panics if WriteUint32LE fails
func (b *SequentialBuffer) MustWriteUint32LE(val uint32) *SequentialBuffer {
	if err := b.WriteUint32LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint32 reads an uint32 in the current byte order
func (b *SequentialBuffer) NextUint32() (uint32, error) {
	if b.order == BigEndian {
		return b.NextUint32BE()
	}
	return b.NextUint32LE()
}

// MustNextUint32 panics if NextUint32 fails
func (b *SequentialBuffer) MustNextUint32() uint32 {
	val, err := b.NextUint32()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint32 writes an uint32 in the current byte order
func (b *SequentialBuffer) WriteUint32(val uint32) error {
	if b.order == BigEndian {
		return b.WriteUint32BE(val)
	}
	return b.WriteUint32LE(val)
}

// MustWriteUint32 panics if WriteUint32 fails
func (b *SequentialBuffer) MustWriteUint32(val uint32) *SequentialBuffer {
	if err := b.WriteUint32(val); err != nil {
		panic(err)
	}
	return b
}

/*
 * 64 bits
 */

// NextInt64BE reads an int64 in big endian order
func (b *SequentialBuffer) NextInt64BE() (int64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

// MustNextInt64BE panics if NextInt64BE fails
func (b *SequentialBuffer) MustNextInt64BE() int64 {
	val, err := b.NextInt64BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt64BE writes an int64 in big endian order
func (b *SequentialBuffer) WriteInt64BE(val int64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(p, uint64(val))
	return nil
}

// MustWriteInt64BE panics if WriteInt64BE fails
func (b *SequentialBuffer) MustWriteInt64BE(val int64) *SequentialBuffer {
	if err := b.WriteInt64BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt64LE reads an int64 in little endian order
func (b *SequentialBuffer) NextInt64LE() (int64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(p)), nil
}

// MustNextInt64LE panics if NextInt64LE fails
func (b *SequentialBuffer) MustNextInt64LE() int64 {
	val, err := b.NextInt64LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt64LE writes an int64 in little endian order
func (b *SequentialBuffer) WriteInt64LE(val int64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(p, uint64(val))
	return nil
}

// MustWriteInt64LE panics if WriteInt64LE fails
func (b *SequentialBuffer) MustWriteInt64LE(val int64) *SequentialBuffer {
	if err := b.WriteInt64LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextInt64 reads an int64 in the current byte order
func (b *SequentialBuffer) NextInt64() (int64, error) {
	if b.order == BigEndian {
		return b.NextInt64BE()
	}
	return b.NextInt64LE()
}

// MustNextInt64 panics if NextInt64 fails
func (b *SequentialBuffer) MustNextInt64() int64 {
	val, err := b.NextInt64()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteInt64 writes an int64 in the current byte order
func (b *SequentialBuffer) WriteInt64(val int64) error {
	if b.order == BigEndian {
		return b.WriteInt64BE(val)
	}
	return b.WriteInt64LE(val)
}

// MustWriteInt64 panics if WriteInt64 fails
func (b *SequentialBuffer) MustWriteInt64(val int64) *SequentialBuffer {
	if err := b.WriteInt64(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint64BE reads an uint64 in big endian order
func (b *SequentialBuffer) NextUint64BE() (uint64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// MustNextUint64BE panics if NextUint64BE fails
func (b *SequentialBuffer) MustNextUint64BE() uint64 {
	val, err := b.NextUint64BE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint64BE writes an uint64 in big endian order
func (b *SequentialBuffer) WriteUint64BE(val uint64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(p, val)
	return nil
}

// MustWriteUint64BE panics if WriteUint64BE fails
func (b *SequentialBuffer) MustWriteUint64BE(val uint64) *SequentialBuffer {
	if err := b.WriteUint64BE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint64LE reads an uint64 in little endian order
func (b *SequentialBuffer) NextUint64LE() (uint64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// MustNextUint64LE panics if NextUint64LE fails
func (b *SequentialBuffer) MustNextUint64LE() uint64 {
	val, err := b.NextUint64LE()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint64LE writes an uint64 in little endian order
func (b *SequentialBuffer) WriteUint64LE(val uint64) error {
	p, err := b.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(p, val)
	return nil
}

// MustWriteUint64LE panics if WriteUint64LE fails
func (b *SequentialBuffer) MustWriteUint64LE(val uint64) *SequentialBuffer {
	if err := b.WriteUint64LE(val); err != nil {
		panic(err)
	}
	return b
}

// NextUint64 reads an uint64 in the current byte order
func (b *SequentialBuffer) NextUint64() (uint64, error) {
	if b.order == BigEndian {
		return b.NextUint64BE()
	}
	return b.NextUint64LE()
}

// MustNextUint64 panics if NextUint64 fails
func (b *SequentialBuffer) MustNextUint64() uint64 {
	val, err := b.NextUint64()
	if err != nil {
		panic(err)
	}
	return val
}

// WriteUint64 writes an uint64 in the current byte order
func (b *SequentialBuffer) WriteUint64(val uint64) error {
	if b.order == BigEndian {
		return b.WriteUint64BE(val)
	}
	return b.WriteUint64LE(val)
}

// MustWriteUint64 panics if WriteUint64 fails
func (b *SequentialBuffer) MustWriteUint64(val uint64) *SequentialBuffer {
	if err := b.WriteUint64(val); err != nil {
		panic(err)
	}
	return b
}
