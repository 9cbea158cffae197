// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"gitlab.com/jaxnet/zblock/types/chainhash"
)

// BlockHeader defines information about a block and is used in the
// block (MsgBlock) message.
//
// The fields are carried as they appear on the wire; none of them is
// interpreted here.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Root of the Sapling note commitment tree.  Reserved and zero before
	// the Sapling upgrade.
	FinalSaplingRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce [NonceSize]byte

	// Solution is the Equihash solution for the header.
	Solution []byte
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number of
	// transactions.  Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, h.SerializeSize()))
	_ = writeBlockHeader(buf, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes a block header from r into the receiver.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	return 4 + chainhash.HashSize*3 + 4 + 4 + NonceSize + VarBytesSerializeSize(h.Solution)
}

// Copy creates a deep copy of a BlockHeader so that the original does not get
// modified when the copy is manipulated.
func (h *BlockHeader) Copy() *BlockHeader {
	clone := *h
	if h.Solution != nil {
		clone.Solution = make([]byte, len(h.Solution))
		copy(clone.Solution, h.Solution)
	}
	return &clone
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, nonce and solution with the
// current time truncated to one second.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce [NonceSize]byte, solution []byte) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
		Solution:   solution,
	}
}

// readBlockHeader reads a block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	err := ReadElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		&bh.FinalSaplingRoot, (*Uint32Time)(&bh.Timestamp), &bh.Bits,
		&bh.Nonce)
	if err != nil {
		return err
	}

	bh.Solution, err = ReadVarBytes(r, MaxSolutionSize, "Solution")
	return err
}

// writeBlockHeader writes a block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	err := WriteElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		&bh.FinalSaplingRoot, sec, bh.Bits, &bh.Nonce)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, bh.Solution)
}
