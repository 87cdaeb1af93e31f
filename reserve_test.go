package seqbuffer

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthPreservesContent(t *testing.T) {
	b := MustNewSequentialBuffer(4, WithGrowthFactor(2))
	b.MustWriteBytes(1, 2, 3)

	previous := append([]byte(nil), b.Bytes()...)

	err := b.WriteBuffer([]byte{4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	assert.Equal(t, 10, b.Tell())
	assert.Equal(t, 16, b.Capacity(), "4 doubled until it covers 10")
	assert.Equal(t, previous[:3], b.Bytes()[:3])
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, b.Finalize())
}

func TestGrowthTenBytes(t *testing.T) {
	b := MustNewSequentialBuffer(4, WithAutoGrow(true))

	for i := 0; i < 10; i++ {
		require.NoError(t, b.WriteUint8(uint8(i)))
	}

	c := b.Capacity()
	assert.True(t, c >= 10)
	assert.Zero(t, c%4)
	assert.Zero(t, (c/4)&(c/4-1), "expected a power of two multiple of 4, got %d", c)
}

func TestGrowthDoesNotMoveLimit(t *testing.T) {
	b := MustNewSequentialBuffer(2, WithAutoGrow(true))
	b.MustWriteUint32BE(1)

	assert.Equal(t, 4, b.Capacity())
	assert.Equal(t, 2, b.Limit())

	b.Clear()
	assert.Equal(t, 4, b.Limit())
}

func TestGrowthFractionalFactor(t *testing.T) {
	b := MustNewSequentialBuffer(1, WithGrowthFactor(1.5))

	require.NoError(t, b.WriteUint64BE(1))
	assert.True(t, b.Capacity() >= 8)
	assert.Equal(t, uint64(1), b.Flip().MustNextUint64BE())
}

func TestCapacityExceededRollsBack(t *testing.T) {
	b := MustNewSequentialBuffer(4)
	b.MustWriteUint16BE(0xabcd)

	err := b.WriteInt32BE(10)
	assert.Equal(t, ErrCapacityExceeded, errors.Cause(err), "expected error in writing a value guaranteed to overflow")
	assert.Equal(t, 2, b.Tell(), "position changing despite a write failure")
	assert.Equal(t, 4, b.Capacity())
	assert.Equal(t, []byte{0xab, 0xcd, 0, 0}, b.Bytes())

	// still usable afterwards
	require.NoError(t, b.WriteUint16BE(0x0102))
	assert.Equal(t, []byte{0xab, 0xcd, 1, 2}, b.Finalize())
}

func TestReadsNeverGrow(t *testing.T) {
	b := MustNewSequentialBuffer(4, WithAutoGrow(true))
	b.MustSeek(2)

	_, err := b.NextUint32BE()
	assert.Equal(t, ErrReadBeyondLimit, errors.Cause(err))
	assert.Equal(t, 2, b.Tell())
	assert.Equal(t, 4, b.Capacity())
}

func TestNegativeLength(t *testing.T) {
	b := MustNewSequentialBuffer(4, WithAutoGrow(true))

	_, err := b.NextBuffer(-1)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))

	_, err = b.NextString(-3)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))
	assert.Equal(t, 0, b.Tell())
}

func TestHugeLength(t *testing.T) {
	b := MustNewSequentialBuffer(4)
	b.MustWriteUint16BE(1).Flip()
	b.MustNextUint8()

	for _, length := range []int{math.MaxInt, math.MaxInt - 1} {
		_, err := b.NextShadowBuffer(length)
		assert.Equal(t, ErrReadBeyondLimit, errors.Cause(err), "read of %d", length)

		_, err = b.NextString(length)
		assert.Equal(t, ErrReadBeyondLimit, errors.Cause(err), "read of %d", length)

		_, err = b.prepare(length, true)
		assert.Equal(t, ErrCapacityExceeded, errors.Cause(err), "write of %d", length)
	}

	assert.Equal(t, 1, b.Tell())
	assert.Equal(t, 4, b.Capacity())

	g := MustNewSequentialBuffer(4, WithAutoGrow(true))
	g.MustWriteUint8(1)

	_, err := g.prepare(math.MaxInt, true)
	assert.Equal(t, ErrCapacityExceeded, errors.Cause(err))
	assert.Equal(t, 1, g.Tell())
	assert.Equal(t, 4, g.Capacity())
}

func TestReadPastLimitAfterWrite(t *testing.T) {
	b := MustNewSequentialBuffer(8)
	b.MustWriteUint8(1).Flip()
	b.MustWriteUint32BE(2)

	_, err := b.NextUint8()
	assert.Equal(t, ErrReadBeyondLimit, errors.Cause(err))
	assert.Equal(t, 4, b.Tell())
}

type growthLog struct {
	reads, writes int
	grown         [][2]int
}

func (g *growthLog) Reserved(length int, write bool) {
	if write {
		g.writes++
	} else {
		g.reads++
	}
}

func (g *growthLog) Grown(from, to int) { g.grown = append(g.grown, [2]int{from, to}) }

func TestObserver(t *testing.T) {
	g := &growthLog{}
	b := MustNewSequentialBuffer(2, WithAutoGrow(true), WithObserver(g))

	b.MustWriteUint16BE(1).MustWriteUint32BE(2).MustWriteUint8(3)
	b.Flip()
	b.MustNextUint16BE()

	_, err := b.NextUint64BE()
	require.Error(t, err)

	assert.Equal(t, 3, g.writes)
	assert.Equal(t, 1, g.reads, "failed reservations are not reported")
	assert.Equal(t, [][2]int{{2, 8}}, g.grown)
}

func TestObserverStringReads(t *testing.T) {
	g := &growthLog{}
	b := MustNewSequentialBuffer(8, WithObserver(g))
	b.MustWriteString("abcd").Flip()
	g.writes = 0

	_, err := b.NextStringEncoding(8, Hex)
	require.Error(t, err)

	_, err = b.NextStringEncoding(2, Encoding("ebcdic"))
	require.Error(t, err)
	assert.Zero(t, g.reads, "failed string reads are not reported")
	assert.Equal(t, 0, b.Tell())

	s, err := b.NextStringEncoding(2, Hex)
	require.NoError(t, err)
	assert.Equal(t, "6162", s)
	assert.Equal(t, 1, g.reads)
	assert.Equal(t, 2, b.Tell())
}

func TestGrowthLogging(t *testing.T) {
	var out bytes.Buffer

	SetLogWriters(&out)
	EnableLogging(true)
	defer func() {
		EnableLogging(false)
		SetLogWriters(os.Stdout)
	}()

	b := MustNewSequentialBuffer(2, WithAutoGrow(true))
	b.MustWriteUint32BE(1)

	assert.Contains(t, out.String(), "grew buffer")
}
