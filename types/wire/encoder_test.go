// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/zblock/types/chainhash"
)

func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in  uint64
		buf []byte
	}{
		// Single byte
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		// Min 2-byte
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		// Max 2-byte
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		// Min 4-byte
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		// Max 4-byte
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		// Min 8-byte
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
		// Max 8-byte
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteVarInt(&buf, test.in), "test %d", i)
		assert.Equal(t, test.buf, buf.Bytes(), "test %d", i)
		assert.Equal(t, len(test.buf), VarIntSerializeSize(test.in), "test %d", i)

		val, err := ReadVarInt(bytes.NewReader(test.buf))
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, test.in, val, "test %d", i)
	}
}

func TestVarIntNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"0 encoded with 3 bytes", []byte{0xfd, 0x00, 0x00}},
		{"max single-byte value encoded with 3 bytes", []byte{0xfd, 0xfc, 0x00}},
		{"0 encoded with 5 bytes", []byte{0xfe, 0x00, 0x00, 0x00, 0x00}},
		{"max three-byte value encoded with 5 bytes", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"0 encoded with 9 bytes", []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"max five-byte value encoded with 9 bytes", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		_, err := ReadVarInt(bytes.NewReader(test.in))
		require.Error(t, err, test.name)
		assert.IsType(t, &MessageError{}, err, test.name)
	}
}

func TestVarIntTruncated(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)

	_, err = ReadVarInt(bytes.NewReader([]byte{0xfe, 0x01}))
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestVarBytes(t *testing.T) {
	long := bytes.Repeat([]byte{0x42}, 300)

	tests := []struct {
		in   []byte
		size int
	}{
		{nil, 1},
		{[]byte{0x01}, 2},
		{long, 303},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteVarBytes(&buf, test.in), "test %d", i)
		assert.Equal(t, test.size, buf.Len(), "test %d", i)
		assert.Equal(t, test.size, VarBytesSerializeSize(test.in), "test %d", i)

		got, err := ReadVarBytes(&buf, MaxBlockPayload, "test payload")
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, test.in, got, "test %d", i)
	}
}

func TestVarBytesOverflow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarBytes(&buf, make([]byte, 11)))

	_, err := ReadVarBytes(&buf, 10, "test payload")
	require.Error(t, err)
	assert.IsType(t, &MessageError{}, err)
	assert.Contains(t, err.Error(), "test payload")

	// a huge length prefix fails before anything is allocated
	buf.Reset()
	require.NoError(t, WriteVarInt(&buf, 1<<40))
	_, err = ReadVarBytes(&buf, MaxBlockPayload, "test payload")
	assert.IsType(t, &MessageError{}, err)
}

func TestElementWire(t *testing.T) {
	hash := chainhash.DoubleHashH([]byte("element"))
	var sig [64]byte
	sig[63] = 0x3f

	var buf bytes.Buffer
	require.NoError(t, WriteElements(&buf, int32(-2), uint32(7), int64(-3), uint64(9),
		true, uint8(0x10), &hash, &sig))
	assert.Equal(t, 4+4+8+8+1+1+32+64, buf.Len())

	var (
		i32  int32
		u32  uint32
		i64  int64
		u64  uint64
		flag bool
		u8   uint8
		h    chainhash.Hash
		s    [64]byte
	)
	require.NoError(t, ReadElements(&buf, &i32, &u32, &i64, &u64, &flag, &u8, &h, &s))
	assert.Equal(t, int32(-2), i32)
	assert.Equal(t, uint32(7), u32)
	assert.Equal(t, int64(-3), i64)
	assert.Equal(t, uint64(9), u64)
	assert.True(t, flag)
	assert.Equal(t, uint8(0x10), u8)
	assert.Equal(t, hash, h)
	assert.Equal(t, sig, s)
}

func TestUint32TimeElement(t *testing.T) {
	buf := bytes.NewReader([]byte{0x90, 0x04, 0x13, 0x58})

	var ts time.Time
	require.NoError(t, ReadElement(buf, (*Uint32Time)(&ts)))
	assert.Equal(t, int64(1477641360), ts.Unix())
}

func TestDecodeFromBytesConsumed(t *testing.T) {
	tx := testCoinbaseTx(5)
	encoded := EncodeToBytes(tx)

	var decoded MsgTx
	n, err := DecodeFromBytes(&decoded, append(encoded, 0xde, 0xad))
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
}
