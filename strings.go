package seqbuffer

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names a text encoding understood by the string accessors
type Encoding string

// supported encodings
const (
	UTF8    Encoding = "utf8"
	UTF16LE Encoding = "utf16le"
	Latin1  Encoding = "latin1"
	ASCII   Encoding = "ascii"
	Hex     Encoding = "hex"
	Base64  Encoding = "base64"
)

var encodingAliases = map[string]Encoding{
	"utf8":     UTF8,
	"utf-8":    UTF8,
	"utf16le":  UTF16LE,
	"utf-16le": UTF16LE,
	"ucs2":     UTF16LE,
	"ucs-2":    UTF16LE,
	"latin1":   Latin1,
	"binary":   Latin1,
	"ascii":    ASCII,
	"hex":      Hex,
	"base64":   Base64,
}

// ParseEncoding resolves an encoding name, ignoring case
func ParseEncoding(name string) (Encoding, error) {
	if e, ok := encodingAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return "", errors.Wrapf(ErrInvalidConfiguration, "unknown encoding %q", name)
}

func (e Encoding) decode(p []byte) (string, error) {
	switch e {
	case UTF8:
		return string(p), nil
	case UTF16LE:
		s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(p)
		return string(s), err
	case Latin1:
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
		return string(s), err
	case ASCII:
		s := make([]byte, len(p))
		for i, c := range p {
			s[i] = c & 0x7f
		}
		return string(s), nil
	case Hex:
		return hex.EncodeToString(p), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(p), nil
	}

	return "", errors.Wrapf(ErrInvalidConfiguration, "unknown encoding %q", string(e))
}

func (e Encoding) encode(s string) ([]byte, error) {
	switch e {
	case UTF8:
		return []byte(s), nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	case Latin1:
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	case ASCII:
		p := make([]byte, 0, len(s))
		for _, r := range s {
			p = append(p, byte(r)&0x7f)
		}
		return p, nil
	case Hex:
		return hex.DecodeString(s)
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	}

	return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown encoding %q", string(e))
}

func (e Encoding) valid() bool {
	switch e {
	case UTF8, UTF16LE, Latin1, ASCII, Hex, Base64:
		return true
	}
	return false
}

/*
 * String
 */

// NextString reads length bytes as an UTF-8 string
func (b *SequentialBuffer) NextString(length int) (string, error) {
	return b.NextStringEncoding(length, UTF8)
}

// MustNextString panics if NextString fails
func (b *SequentialBuffer) MustNextString(length int) string {
	s, err := b.NextString(length)
	if err != nil {
		panic(err)
	}
	return s
}

// NextStringEncoding reads length bytes as a string in the passed encoding
//
// the bytes are only consumed once they decode, otherwise the position is
// left where it was and no read is reported to the observer.
func (b *SequentialBuffer) NextStringEncoding(length int, e Encoding) (string, error) {
	if !e.valid() {
		return "", errors.Wrapf(ErrInvalidConfiguration, "unknown encoding %q", string(e))
	}

	p, err := b.peek(length)
	if err != nil {
		return "", err
	}

	s, err := e.decode(p)
	if err != nil {
		return "", errors.Wrapf(err, "cannot decode %d bytes as %s", length, e)
	}

	if _, err = b.next(length); err != nil {
		return "", err
	}

	return s, nil
}

// WriteString writes the UTF-8 bytes of a string
//
// no length is written, the reader has to know it, a protocol that needs
// one writes it beforehand with one of the integer writers.
func (b *SequentialBuffer) WriteString(val string) error {
	return b.WriteStringEncoding(val, UTF8)
}

// MustWriteString panics if WriteString fails
func (b *SequentialBuffer) MustWriteString(val string) *SequentialBuffer {
	if err := b.WriteString(val); err != nil {
		panic(err)
	}
	return b
}

// WriteStringEncoding writes a string in the passed encoding
func (b *SequentialBuffer) WriteStringEncoding(val string, e Encoding) error {
	if e == UTF8 {
		p, err := b.reserve(len(val))
		if err != nil {
			return err
		}

		copy(p, val)
		return nil
	}

	data, err := e.encode(val)
	if err != nil {
		return errors.Wrapf(err, "cannot encode string as %s", e)
	}

	return b.WriteBuffer(data)
}
