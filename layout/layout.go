// Package layout describes fixed size binary records as a list of fields
// and moves them in and out of a seqbuffer.Buffer
//
// a layout is written as a comma separated list of field codes
//
//	i8 u8                      single bytes
//	i16 u16 i32 u32 i64 u64    integers
//	f32 f64                    IEEE 754 floats
//	str:N                      N bytes of UTF-8 text
//	bytes:N                    N raw bytes
//	skip:N                     N bytes of padding
//
// multi byte numbers take an optional be or le suffix (u16be, f64le), without
// one they use the byte order of the buffer.
package layout

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/performancecopilot/seqbuffer"
)

// Kind is the type of a single field
type Kind int

// values for Kind
const (
	Int8 Kind = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	String
	Bytes
	Skip
)

var kindCodes = []string{"i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64", "f32", "f64", "str", "bytes", "skip"}

var kindWidths = []int{1, 1, 2, 2, 4, 4, 8, 8, 4, 8, 0, 0, 0}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindCodes) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindCodes[k]
}

// variable reports whether the field length is given explicitly
func (k Kind) variable() bool { return k == String || k == Bytes || k == Skip }

// ordered reports whether the byte order matters for the field
func (k Kind) ordered() bool { return kindWidths[k] > 1 }

// Field is a single entry of a Layout
type Field struct {
	Kind  Kind
	Order seqbuffer.ByteOrder // 0 uses the order of the buffer
	Len   int                 // byte length of String, Bytes and Skip fields
}

// Size returns the number of bytes the field takes
func (f Field) Size() int {
	if f.Kind.variable() {
		return f.Len
	}
	return kindWidths[f.Kind]
}

func (f Field) String() string {
	s := f.Kind.String()

	if f.Kind.variable() {
		return s + ":" + strconv.Itoa(f.Len)
	}

	switch f.Order {
	case seqbuffer.BigEndian:
		s += "be"
	case seqbuffer.LittleEndian:
		s += "le"
	}

	return s
}

// Layout is an ordered list of fields making up one record
type Layout []Field

// Parse parses a comma separated list of field codes
func Parse(s string) (Layout, error) {
	var l Layout

	for _, code := range strings.Split(s, ",") {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		f, err := parseField(code)
		if err != nil {
			return nil, err
		}

		l = append(l, f)
	}

	if len(l) == 0 {
		return nil, errors.Wrapf(seqbuffer.ErrInvalidConfiguration, "empty layout %q", s)
	}

	return l, nil
}

// MustParse is a Parse that panics on error
func MustParse(s string) Layout {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func parseField(code string) (Field, error) {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		name, count := code[:i], code[i+1:]

		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return Field{}, errors.Wrapf(seqbuffer.ErrInvalidConfiguration, "bad length in field %q", code)
		}

		for _, k := range []Kind{String, Bytes, Skip} {
			if name == kindCodes[k] {
				return Field{Kind: k, Len: n}, nil
			}
		}

		return Field{}, errors.Wrapf(seqbuffer.ErrInvalidConfiguration, "unknown field %q", code)
	}

	var order seqbuffer.ByteOrder
	switch {
	case strings.HasSuffix(code, "be"):
		order, code = seqbuffer.BigEndian, strings.TrimSuffix(code, "be")
	case strings.HasSuffix(code, "le"):
		order, code = seqbuffer.LittleEndian, strings.TrimSuffix(code, "le")
	}

	for k := Int8; k <= Float64; k++ {
		if code != kindCodes[k] {
			continue
		}

		if order != 0 && !k.ordered() {
			return Field{}, errors.Wrapf(seqbuffer.ErrInvalidConfiguration, "field %q takes no byte order", code)
		}

		return Field{Kind: k, Order: order}, nil
	}

	return Field{}, errors.Wrapf(seqbuffer.ErrInvalidConfiguration, "unknown field %q", code)
}

// Size returns the byte length of one record
func (l Layout) Size() int {
	n := 0
	for _, f := range l {
		n += f.Size()
	}
	return n
}

// Values returns the number of values a record decodes to
func (l Layout) Values() int {
	n := 0
	for _, f := range l {
		if f.Kind != Skip {
			n++
		}
	}
	return n
}

func (l Layout) String() string {
	codes := make([]string, len(l))
	for i, f := range l {
		codes[i] = f.String()
	}
	return strings.Join(codes, ",")
}

// withOrder runs fn with the byte order of the buffer switched to order,
// restoring the previous order afterwards
func withOrder(b seqbuffer.Buffer, order seqbuffer.ByteOrder, fn func() error) error {
	if order == 0 || order == b.Order() {
		return fn()
	}

	previous := b.Order()
	b.SetOrder(order)
	defer b.SetOrder(previous)

	return fn()
}

// Decode reads one record at the position of the buffer
//
// nothing is read unless the whole record fits before the limit. Skip
// fields produce no value, []byte is returned for Bytes fields and trailing
// zero bytes are dropped from String fields.
func (l Layout) Decode(b seqbuffer.Buffer) ([]interface{}, error) {
	if size := l.Size(); b.Remaining() < size {
		return nil, errors.Wrapf(seqbuffer.ErrReadBeyondLimit, "record of %d bytes, %d remaining", size, b.Remaining())
	}

	vals := make([]interface{}, 0, l.Values())

	for _, f := range l {
		var v interface{}

		err := withOrder(b, f.Order, func() (err error) {
			switch f.Kind {
			case Int8:
				v, err = b.NextInt8()
			case Uint8:
				v, err = b.NextUint8()
			case Int16:
				v, err = b.NextInt16()
			case Uint16:
				v, err = b.NextUint16()
			case Int32:
				v, err = b.NextInt32()
			case Uint32:
				v, err = b.NextUint32()
			case Int64:
				v, err = b.NextInt64()
			case Uint64:
				v, err = b.NextUint64()
			case Float32:
				v, err = b.NextFloat32()
			case Float64:
				v, err = b.NextFloat64()
			case String:
				var str string
				str, err = b.NextString(f.Len)
				v = strings.TrimRight(str, "\x00")
			case Bytes:
				v, err = b.NextBuffer(f.Len)
			case Skip:
				err = b.Seek(b.Tell() + f.Len)
			}
			return
		})
		if err != nil {
			return nil, errors.Wrapf(err, "field %v", f)
		}

		if f.Kind != Skip {
			vals = append(vals, v)
		}
	}

	return vals, nil
}

// Encode writes one record at the position of the buffer
//
// every value has to have the Go type of its field (int8 for i8, string for
// str and so on), int is accepted for any integer field and float64 for f32
// as long as the value fits. String and Bytes values shorter than the field
// are padded with zero bytes. The values are checked before anything is
// written, and a failed write moves the position back to the start of the
// record.
func (l Layout) Encode(b seqbuffer.Buffer, vals []interface{}) error {
	if len(vals) != l.Values() {
		return errors.Errorf("layout %v takes %d values, got %d", l, l.Values(), len(vals))
	}

	resolved := make([]interface{}, len(vals))
	i := 0
	for _, f := range l {
		if f.Kind == Skip {
			continue
		}

		v, err := resolve(f, vals[i])
		if err != nil {
			return err
		}

		resolved[i] = v
		i++
	}

	start := b.Tell()

	i = 0
	for _, f := range l {
		var v interface{}
		if f.Kind != Skip {
			v = resolved[i]
			i++
		}

		err := withOrder(b, f.Order, func() error {
			switch f.Kind {
			case Int8:
				return b.WriteInt8(v.(int8))
			case Uint8:
				return b.WriteUint8(v.(uint8))
			case Int16:
				return b.WriteInt16(v.(int16))
			case Uint16:
				return b.WriteUint16(v.(uint16))
			case Int32:
				return b.WriteInt32(v.(int32))
			case Uint32:
				return b.WriteUint32(v.(uint32))
			case Int64:
				return b.WriteInt64(v.(int64))
			case Uint64:
				return b.WriteUint64(v.(uint64))
			case Float32:
				return b.WriteFloat32(v.(float32))
			case Float64:
				return b.WriteFloat64(v.(float64))
			case String, Bytes:
				return b.WriteBuffer(v.([]byte))
			case Skip:
				return b.WriteBuffer(make([]byte, f.Len))
			}
			return nil
		})
		if err != nil {
			// put the position back where the record started, the bytes
			// already written stay in the buffer
			_ = b.Seek(start)
			return errors.Wrapf(err, "field %v", f)
		}
	}

	return nil
}

// resolve converts a value to the exact type written for a field
func resolve(f Field, v interface{}) (interface{}, error) {
	if n, ok := v.(int); ok {
		return resolveInt(f, n)
	}

	if x, ok := v.(float64); ok && f.Kind == Float32 {
		if math.Abs(x) > math.MaxFloat32 && !math.IsInf(x, 0) {
			return nil, errors.Errorf("field %v: %v overflows float32", f, x)
		}
		return float32(x), nil
	}

	switch f.Kind {
	case String, Bytes:
		var p []byte
		switch x := v.(type) {
		case string:
			if f.Kind != String {
				return nil, errors.Errorf("field %v: cannot write %T", f, v)
			}
			p = []byte(x)
		case []byte:
			if f.Kind != Bytes {
				return nil, errors.Errorf("field %v: cannot write %T", f, v)
			}
			p = x
		default:
			return nil, errors.Errorf("field %v: cannot write %T", f, v)
		}

		if len(p) > f.Len {
			return nil, errors.Errorf("field %v: value of %d bytes does not fit", f, len(p))
		}

		padded := make([]byte, f.Len)
		copy(padded, p)
		return padded, nil
	}

	if reflect.TypeOf(v) != reflect.TypeOf(zero(f.Kind)) {
		return nil, errors.Errorf("field %v: cannot write %T", f, v)
	}

	return v, nil
}

func zero(k Kind) interface{} {
	switch k {
	case Int8:
		return int8(0)
	case Uint8:
		return uint8(0)
	case Int16:
		return int16(0)
	case Uint16:
		return uint16(0)
	case Int32:
		return int32(0)
	case Uint32:
		return uint32(0)
	case Int64:
		return int64(0)
	case Uint64:
		return uint64(0)
	case Float32:
		return float32(0)
	case Float64:
		return float64(0)
	}
	return nil
}

func resolveInt(f Field, n int) (interface{}, error) {
	var lo, hi int64
	switch f.Kind {
	case Int8:
		lo, hi = math.MinInt8, math.MaxInt8
	case Uint8:
		lo, hi = 0, math.MaxUint8
	case Int16:
		lo, hi = math.MinInt16, math.MaxInt16
	case Uint16:
		lo, hi = 0, math.MaxUint16
	case Int32:
		lo, hi = math.MinInt32, math.MaxInt32
	case Uint32:
		lo, hi = 0, math.MaxUint32
	case Int64:
		return int64(n), nil
	case Uint64:
		if n < 0 {
			return nil, errors.Errorf("field %v: %d is negative", f, n)
		}
		return uint64(n), nil
	default:
		return nil, errors.Errorf("field %v: cannot write int", f)
	}

	if int64(n) < lo || int64(n) > hi {
		return nil, errors.Errorf("field %v: %d out of range", f, n)
	}

	switch f.Kind {
	case Int8:
		return int8(n), nil
	case Uint8:
		return uint8(n), nil
	case Int16:
		return int16(n), nil
	case Uint16:
		return uint16(n), nil
	case Int32:
		return int32(n), nil
	}
	return uint32(n), nil
}
