package seqbuffer

import (
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedBuffer is a SequentialBuffer whose store is a memory mapped file
//
// the mapping is wrapped without copying, so everything written through the
// buffer lands in the file. The store can never be replaced, which means
// growth is always disabled.
type MemoryMappedBuffer struct {
	*SequentialBuffer
	m   mmap.MMap
	f   *os.File
	loc string // location of the memory mapped file
}

// NewMemoryMappedBuffer will create a file of size zero bytes at loc,
// replacing any existing one, and map it for reading and writing
func NewMemoryMappedBuffer(loc string, size int, opts ...Option) (*MemoryMappedBuffer, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "size %d, must be at least 1", size)
	}

	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(filepath.Dir(loc), 0700); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	if err = f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "could not initialize %d bytes", size)
	}

	return mapFile(f, loc, mmap.RDWR, opts)
}

// OpenMemoryMappedBuffer maps an existing file
//
// a buffer opened without writable must only be read from, writing to a
// read only mapping faults.
func OpenMemoryMappedBuffer(loc string, writable bool, opts ...Option) (*MemoryMappedBuffer, error) {
	flag, prot := os.O_RDONLY, mmap.RDONLY
	if writable {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	f, err := os.OpenFile(loc, flag, 0)
	if err != nil {
		return nil, err
	}

	return mapFile(f, loc, prot, opts)
}

func mapFile(f *os.File, loc string, prot int, opts []Option) (*MemoryMappedBuffer, error) {
	m, err := mmap.Map(f, prot, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "cannot map %s", loc)
	}

	b, err := NewSequentialBufferSlice(m, append(opts, WithGrowthFactor(0))...)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	b.pinned = true

	return &MemoryMappedBuffer{
		SequentialBuffer: b,
		m:                m,
		f:                f,
		loc:              loc,
	}, nil
}

// Location returns the path of the mapped file
func (b *MemoryMappedBuffer) Location() string { return b.loc }

// Flush writes any changes to the mapping back to the file
func (b *MemoryMappedBuffer) Flush() error { return b.m.Flush() }

// Unmap will manually delete the memory mapping of a mapped buffer
//
// the buffer must not be used afterwards.
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := b.m.Unmap(); err != nil {
		return err
	}

	if err := b.f.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return err
		}
	}

	return nil
}
