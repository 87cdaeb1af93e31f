package seqbuffer

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ByteOrder selects the byte order used by the order agnostic accessors
type ByteOrder int

// values for ByteOrder
const (
	BigEndian ByteOrder = iota + 1
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	}
	return "ByteOrder(" + strconv.Itoa(int(o)) + ")"
}

// binary returns the encoding/binary equivalent of the byte order
func (o ByteOrder) binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (o ByteOrder) valid() bool { return o == BigEndian || o == LittleEndian }

// ParseByteOrder parses the textual names "be", "big", "bigendian", "le",
// "little" and "littleendian", ignoring case
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.Replace(strings.TrimSpace(s), "_", "", -1)) {
	case "be", "big", "bigendian":
		return BigEndian, nil
	case "le", "little", "littleendian":
		return LittleEndian, nil
	}

	return 0, errors.Wrapf(ErrInvalidConfiguration, "unknown byte order %q", s)
}
