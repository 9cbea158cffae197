// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"gitlab.com/jaxnet/zblock/types/chainhash"
)

// MaxVarIntPayload is the maximum payload size for a variable length integer.
const MaxVarIntPayload = 9

// Uint32Time represents a unix timestamp encoded with a uint32.  It is used as
// a way to signal ReadElement how to decode a timestamp into a Go time.Time
// since it is otherwise ambiguous.
type Uint32Time time.Time

// varIntForm is one of the prefixed CompactSize encodings.
type varIntForm struct {
	prefix uint8
	size   int
	// min is the smallest value that may use this form.
	min uint64
}

var (
	varInt16 = varIntForm{prefix: 0xfd, size: 3, min: 0xfd}
	varInt32 = varIntForm{prefix: 0xfe, size: 5, min: 0x10000}
	varInt64 = varIntForm{prefix: 0xff, size: 9, min: 0x100000000}
)

// fixedBytes exposes the storage of the fixed size byte fields so that they
// are copied as is, without going through binary.Read.
func fixedBytes(element interface{}) ([]byte, bool) {
	switch e := element.(type) {
	case *chainhash.Hash:
		return e[:], true
	case *[32]byte:
		return e[:], true
	case *[64]byte:
		return e[:], true
	}
	return nil, false
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	if buf, ok := fixedBytes(element); ok {
		_, err := io.ReadFull(r, buf)
		return err
	}

	var err error
	switch e := element.(type) {
	case *uint8:
		*e, err = BinarySerializer.Uint8(r)

	case *bool:
		var b uint8
		b, err = BinarySerializer.Uint8(r)
		*e = b != 0x00

	case *int32:
		var v uint32
		v, err = BinarySerializer.Uint32(r, littleEndian)
		*e = int32(v)

	case *uint32:
		*e, err = BinarySerializer.Uint32(r, littleEndian)

	case *int64:
		var v uint64
		v, err = BinarySerializer.Uint64(r, littleEndian)
		*e = int64(v)

	case *uint64:
		*e, err = BinarySerializer.Uint64(r, littleEndian)

	case *Uint32Time:
		var sec uint32
		sec, err = BinarySerializer.Uint32(r, littleEndian)
		if err == nil {
			*e = Uint32Time(time.Unix(int64(sec), 0))
		}

	default:
		return binary.Read(r, littleEndian, element)
	}

	return err
}

// ReadElements reads multiple items from r in order.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := ReadElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	if buf, ok := fixedBytes(element); ok {
		_, err := w.Write(buf)
		return err
	}

	switch e := element.(type) {
	case uint8:
		return BinarySerializer.PutUint8(w, e)
	case bool:
		var b uint8
		if e {
			b = 0x01
		}
		return BinarySerializer.PutUint8(w, b)
	case int32:
		return BinarySerializer.PutUint32(w, littleEndian, uint32(e))
	case uint32:
		return BinarySerializer.PutUint32(w, littleEndian, e)
	case int64:
		return BinarySerializer.PutUint64(w, littleEndian, uint64(e))
	case uint64:
		return BinarySerializer.PutUint64(w, littleEndian, e)
	}

	return binary.Write(w, littleEndian, element)
}

// WriteElements writes multiple items to w in order.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := WriteElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a CompactSize integer from r.  Values encoded with more
// bytes than needed are rejected, so every value has exactly one encoding.
func ReadVarInt(r io.Reader) (uint64, error) {
	prefix, err := BinarySerializer.Uint8(r)
	if err != nil {
		return 0, err
	}

	var (
		val  uint64
		form varIntForm
	)
	switch prefix {
	case varInt64.prefix:
		form = varInt64
		val, err = BinarySerializer.Uint64(r, littleEndian)

	case varInt32.prefix:
		form = varInt32
		var v uint32
		v, err = BinarySerializer.Uint32(r, littleEndian)
		val = uint64(v)

	case varInt16.prefix:
		form = varInt16
		var v uint16
		v, err = BinarySerializer.Uint16(r, littleEndian)
		val = uint64(v)

	default:
		return uint64(prefix), nil
	}
	if err != nil {
		return 0, err
	}

	if val < form.min {
		str := fmt.Sprintf("non-canonical varint %x - discriminant %x must "+
			"encode a value greater than %x", val, prefix, form.min)
		return 0, messageError("ReadVarInt", str)
	}
	return val, nil
}

// WriteVarInt serializes val to w as a CompactSize integer.
func WriteVarInt(w io.Writer, val uint64) error {
	var err error
	switch VarIntSerializeSize(val) {
	case 1:
		return BinarySerializer.PutUint8(w, uint8(val))

	case varInt16.size:
		if err = BinarySerializer.PutUint8(w, varInt16.prefix); err == nil {
			err = BinarySerializer.PutUint16(w, littleEndian, uint16(val))
		}

	case varInt32.size:
		if err = BinarySerializer.PutUint8(w, varInt32.prefix); err == nil {
			err = BinarySerializer.PutUint32(w, littleEndian, uint32(val))
		}

	default:
		if err = BinarySerializer.PutUint8(w, varInt64.prefix); err == nil {
			err = BinarySerializer.PutUint64(w, littleEndian, val)
		}
	}
	return err
}

// VarIntSerializeSize returns the number of bytes WriteVarInt produces for
// val.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < varInt16.min:
		return 1
	case val < varInt32.min:
		return varInt16.size
	case val < varInt64.min:
		return varInt32.size
	}
	return varInt64.size
}

// ReadVarBytes reads a byte slice prefixed with its CompactSize length.
// Lengths above maxAllowed are rejected before anything is allocated, and
// fieldName names the field in that error.  A zero length yields nil.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", str)
	}
	if count == 0 {
		return nil, nil
	}

	b := make([]byte, count)
	if _, err = io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes writes b prefixed with its CompactSize length.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}

	_, err := w.Write(b)
	return err
}

// VarBytesSerializeSize returns the number of bytes WriteVarBytes produces
// for b.
func VarBytesSerializeSize(b []byte) int {
	return VarIntSerializeSize(uint64(len(b))) + len(b)
}

// readCount reads a CompactSize item count and rejects values above max,
// which is derived from the smallest possible encoding of a single item.
// Without the bound a few bytes could make the decoder allocate gigabytes.
func readCount(r io.Reader, max uint64, funcName, what string) (uint64, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}

	if count > max {
		str := fmt.Sprintf("too many %s to fit into max block size "+
			"[count %d, max %d]", what, count, max)
		return 0, messageError(funcName, str)
	}
	return count, nil
}
