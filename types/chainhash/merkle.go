// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"github.com/pkg/errors"
)

// ErrLeafIndexOutOfRange is returned when a proof is requested for a leaf
// that is not part of the tree.
var ErrLeafIndexOutOfRange = errors.New("merkle leaf index out of range")

// EmptyMerkleRoot is the root reported for a tree without leaves.
var EmptyMerkleRoot = Hash{}

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left, right *Hash) *Hash {
	// Concatenate the left and right nodes.
	var hash [HashSize * 2]byte
	copy(hash[:HashSize], left[:])
	copy(hash[HashSize:], right[:])

	newHash := DoubleHashH(hash[:])
	return &newHash
}

// MerkleTreeRoot folds the ordered list of leaves into the merkle root.
//
// An empty list has no natural root, EmptyMerkleRoot (all zeros) is returned
// for it.  A single leaf is its own root.
// Otherwise the leaves are hashed pairwise level by level, pairing the last
// node of an odd level with itself, until one node is left.
//
// The passed slice is never modified.
func MerkleTreeRoot(leaves []Hash) Hash {
	switch len(leaves) {
	case 0:
		return EmptyMerkleRoot
	case 1:
		return leaves[0]
	}

	level := make([]Hash, len(leaves), len(leaves)+1)
	copy(level, leaves)

	for len(level) > 1 {
		level = nextMerkleLevel(level)
	}

	return level[0]
}

// nextMerkleLevel computes the parents of the nodes in level.  The parents
// are written over the front of level, so the caller must own it.
func nextMerkleLevel(level []Hash) []Hash {
	if len(level)%2 != 0 {
		level = append(level, level[len(level)-1])
	}

	next := level[:len(level)/2]
	for i := 0; i < len(level); i += 2 {
		next[i/2] = *HashMerkleBranches(&level[i], &level[i+1])
	}
	return next
}

// nextPowerOfTwo returns the next highest power of two from a given number if
// it is not already a power of two.  This is a helper function used during the
// calculation of a merkle tree.
func nextPowerOfTwo(n int) int {
	// Return the number if it's already a power of 2.
	if n&(n-1) == 0 {
		return n
	}

	// Figure out and return the next power of two.
	exponent := uint(0)
	for n > 0 {
		n >>= 1
		exponent++
	}
	return 1 << exponent
}

// BuildMerkleTreeStore creates a merkle tree from the leaves, stores it using
// a linear array, and returns a slice of the backing array.  A linear array
// was chosen as opposed to an actual tree structure since it uses about half
// as much memory.  The following describes a merkle tree and how it is stored
// in a linear array.
//
// A merkle tree is a tree in which every non-leaf node is the hash of its
// children nodes.  A diagram depicting how this works for transactions
// where h(x) is a double sha256 follows:
//
//	         root = h1234 = h(h12 + h34)
//	        /                           \
//	  h12 = h(h1 + h2)            h34 = h(h3 + h4)
//	   /            \              /            \
//	h1 = h(tx1)  h2 = h(tx2)    h3 = h(tx3)  h4 = h(tx4)
//
// The above stored as a linear array is as follows:
//
//	[h1 h2 h3 h4 h12 h34 root]
//
// As the above shows, the merkle root is always the last element in the array.
//
// The number of inputs is not always a power of two which results in a
// balanced tree structure as above.  In that case, parent nodes with no
// children are also zero and parent nodes with only a single left node
// are calculated by concatenating the left node with itself before hashing.
// Since this function uses nodes that are pointers to the hashes, empty nodes
// will be nil.
//
// An empty list of leaves produces a nil store.
func BuildMerkleTreeStore(leaves []Hash) []*Hash {
	if len(leaves) == 0 {
		return nil
	}

	// Calculate how many entries are required to hold the binary merkle
	// tree as a linear array and create an array of that size.
	nextPoT := nextPowerOfTwo(len(leaves))
	arraySize := nextPoT*2 - 1
	merkles := make([]*Hash, arraySize)

	for i := range leaves {
		leaf := leaves[i]
		merkles[i] = &leaf
	}

	// Start the array offset after the last leaf and adjusted to the
	// next power of two.
	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		// When there is no left child node, the parent is nil too.
		case merkles[i] == nil:
			merkles[offset] = nil

		// When there is no right child, the parent is generated by
		// hashing the concatenation of the left child with itself.
		case merkles[i+1] == nil:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i])

		// The normal case sets the parent node to the double sha256
		// of the concatentation of the left and right children.
		default:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i+1])
		}
		offset++
	}

	return merkles
}

// MerkleTreeProof returns the sibling path that links the leaf at index to
// the root returned by MerkleTreeRoot for the same leaves.  The path is
// ordered from the leaf level upwards.
func MerkleTreeProof(leaves []Hash, index int) ([]Hash, error) {
	if index < 0 || index >= len(leaves) {
		return nil, ErrLeafIndexOutOfRange
	}

	path := make([]Hash, 0)
	level := make([]Hash, len(leaves), len(leaves)+1)
	copy(level, leaves)

	for len(level) > 1 {
		sibling := index ^ 1
		if sibling == len(level) {
			// odd level, the node is paired with itself
			sibling = index
		}

		path = append(path, level[sibling])
		level = nextMerkleLevel(level)
		index >>= 1
	}

	return path, nil
}

// BuildMerkleTreeProof returns the merkle path of the first leaf, which is
// what a coinbase inclusion proof carries.
func BuildMerkleTreeProof(leaves []Hash) []Hash {
	path, err := MerkleTreeProof(leaves, 0)
	if err != nil {
		return nil
	}
	return path
}

// VerifyMerkleProof checks that leaf, located at index, together with path
// hashes up to root.
func VerifyMerkleProof(leaf Hash, index int, path []Hash, root Hash) bool {
	if index < 0 {
		return false
	}

	node := leaf
	for i := range path {
		if index&1 == 0 {
			node = *HashMerkleBranches(&node, &path[i])
		} else {
			node = *HashMerkleBranches(&path[i], &node)
		}
		index >>= 1
	}

	return index == 0 && node == root
}

// ValidateMerkleTreeProof checks the merkle path of the first leaf.
func ValidateMerkleTreeProof(leaf Hash, path []Hash, root Hash) bool {
	return VerifyMerkleProof(leaf, 0, path, root)
}
