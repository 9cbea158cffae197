// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256d hashes the concatenation of the passed hashes with the standard
// library so the expectations do not share code with the tree.
func sha256d(parts ...Hash) Hash {
	var buf []byte
	for _, p := range parts {
		buf = append(buf, p[:]...)
	}
	first := sha256.Sum256(buf)
	return sha256.Sum256(first[:])
}

func TestMerkleTreeRootEmpty(t *testing.T) {
	assert.Equal(t, ZeroHash, MerkleTreeRoot(nil))
	assert.Equal(t, ZeroHash, MerkleTreeRoot([]Hash{}))
	assert.Equal(t, MerkleTreeRoot(nil), MerkleTreeRoot(nil))
}

func TestMerkleTreeRootSingleLeaf(t *testing.T) {
	leaf := s2h("single tx")
	assert.Equal(t, leaf, MerkleTreeRoot([]Hash{leaf}))
}

func TestMerkleTreeRootTwoLeaves(t *testing.T) {
	a, b := s2h("tx1"), s2h("tx2")
	assert.Equal(t, sha256d(a, b), MerkleTreeRoot([]Hash{a, b}))
}

func TestMerkleTreeRootOddLeafDuplication(t *testing.T) {
	a, b, c := s2h("tx1"), s2h("tx2"), s2h("tx3")

	// [a, b, c] -> [H(a|b), H(c|c)] -> H(H(a|b) | H(c|c))
	want := sha256d(sha256d(a, b), sha256d(c, c))
	assert.Equal(t, want, MerkleTreeRoot([]Hash{a, b, c}))

	// the duplicated node must not be confused with an explicit fourth leaf
	// of a different value
	d := s2h("tx4")
	assert.NotEqual(t, want, MerkleTreeRoot([]Hash{a, b, c, d}))
}

func TestMerkleTreeRootFiveLeaves(t *testing.T) {
	l := []Hash{s2h("0"), s2h("1"), s2h("2"), s2h("3"), s2h("4")}

	h01 := sha256d(l[0], l[1])
	h23 := sha256d(l[2], l[3])
	h44 := sha256d(l[4], l[4])
	h0123 := sha256d(h01, h23)
	h4444 := sha256d(h44, h44)
	want := sha256d(h0123, h4444)

	assert.Equal(t, want, MerkleTreeRoot(l))
}

func TestMerkleTreeRootOrderSensitive(t *testing.T) {
	a, b, c := s2h("tx1"), s2h("tx2"), s2h("tx3")

	assert.NotEqual(t, MerkleTreeRoot([]Hash{a, b}), MerkleTreeRoot([]Hash{b, a}))
	assert.NotEqual(t, MerkleTreeRoot([]Hash{a, b, c}), MerkleTreeRoot([]Hash{a, c, b}))
}

func TestMerkleTreeRootDoesNotMutateInput(t *testing.T) {
	leaves := []Hash{s2h("tx1"), s2h("tx2"), s2h("tx3")}
	backup := make([]Hash, len(leaves))
	copy(backup, leaves)

	first := MerkleTreeRoot(leaves)
	second := MerkleTreeRoot(leaves)

	assert.Equal(t, backup, leaves)
	assert.Equal(t, first, second)
}

func TestBuildMerkleTreeStoreMatchesRoot(t *testing.T) {
	assert.Nil(t, BuildMerkleTreeStore(nil))

	for n := 1; n <= 17; n++ {
		leaves := make([]Hash, n)
		for i := range leaves {
			leaves[i] = s2h(string(rune('A' + i)))
		}

		store := BuildMerkleTreeStore(leaves)
		require.NotEmpty(t, store)
		root := store[len(store)-1]
		require.NotNil(t, root)
		assert.Equalf(t, MerkleTreeRoot(leaves), *root, "%d leaves", n)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {9, 16}, {17, 32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPowerOfTwo(tt.in))
	}
}
