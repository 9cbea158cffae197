// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mainNetGenesisHash is the hash of the first block of the zcash main chain.
const mainNetGenesisHash = "00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08"

func TestHashStringIsReversed(t *testing.T) {
	hash, err := NewHashFromStr(mainNetGenesisHash)
	require.NoError(t, err)

	assert.Equal(t, mainNetGenesisHash, hash.String())

	// the stored order is the reverse of the displayed one
	raw, _ := hex.DecodeString(mainNetGenesisHash)
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	assert.True(t, bytes.Equal(raw, hash[:]))
	assert.Equal(t, byte(0x08), hash[0])
	assert.Equal(t, byte(0x00), hash[HashSize-1])
}

func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Hash
		err  bool
	}{
		{
			name: "empty string",
			in:   "",
			want: Hash{},
		},
		{
			name: "single digit",
			in:   "1",
			want: Hash{0x01},
		},
		{
			name: "odd length is padded",
			in:   "123",
			want: Hash{0x23, 0x01},
		},
		{
			name: "too long",
			in:   "01234567890123456789012345678901234567890123456789012345678912345",
			err:  true,
		},
		{
			name: "not hex",
			in:   "abcdefg",
			err:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHashFromStr(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	_, err := NewHashFromStr("01234567890123456789012345678901234567890123456789012345678912345")
	assert.Equal(t, ErrHashStrSize, err)
}

func TestDecodeStrict(t *testing.T) {
	var h Hash
	assert.Equal(t, ErrHashStrLength, DecodeStrict(&h, "1234"))
	assert.NoError(t, DecodeStrict(&h, mainNetGenesisHash))
	assert.Equal(t, mainNetGenesisHash, h.String())
}

func TestHashSetBytesAndEquality(t *testing.T) {
	var h Hash
	assert.Error(t, h.SetBytes([]byte{1, 2, 3}))

	raw := DoubleHashB([]byte("zcash"))
	require.NoError(t, h.SetBytes(raw))
	assert.Equal(t, raw, h.CloneBytes())

	other, err := NewHash(raw)
	require.NoError(t, err)
	assert.True(t, h.IsEqual(other))

	var nilHash *Hash
	assert.True(t, nilHash.IsEqual(nil))
	assert.False(t, nilHash.IsEqual(&h))
	assert.False(t, h.IsZero())
	assert.True(t, ZeroHash.IsZero())
}

func TestHashTextRoundTrip(t *testing.T) {
	h := DoubleHashH([]byte("text"))
	text, err := h.MarshalText()
	require.NoError(t, err)

	var decoded Hash
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, h, decoded)
}

func TestDoubleHash(t *testing.T) {
	// sha256d("") is a well known constant.
	want := "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"
	assert.Equal(t, want, hex.EncodeToString(DoubleHashB(nil)))

	h := DoubleHashH(nil)
	assert.Equal(t, want, hex.EncodeToString(h[:]))

	single := HashH(nil)
	assert.Equal(t, HashB(nil), single[:])
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(single[:]))
}
