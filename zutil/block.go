// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zutil

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/zblock/types/chainhash"
	"gitlab.com/jaxnet/zblock/types/wire"
)

// OutOfRangeError describes an error due to accessing an element that is out
// of range.
type OutOfRangeError string

// BlockHeightUnknown is the value returned for a block height that is unknown.
// This is typically because the block has not been inserted into the main chain
// yet.
const BlockHeightUnknown = int32(-1)

// Error satisfies the error interface and prints human-readable errors.
func (e OutOfRangeError) Error() string {
	return string(e)
}

// Block defines a block that provides easier and more efficient manipulation
// of raw blocks.  It also memoizes hashes for the block and its transactions
// on their first access so subsequent accesses don't have to repeat the
// relatively expensive hashing operations.  A Block is safe for concurrent
// readers.
//
// The wrapped message must not be modified once the Block is in use.
type Block struct {
	msgBlock    *wire.MsgBlock
	blockHeight int32

	bytesOnce       sync.Once
	serializedBlock []byte

	hashOnce  sync.Once
	blockHash chainhash.Hash

	txsOnce      sync.Once
	transactions []*Tx

	merkleOnce sync.Once
	merkleRoot chainhash.Hash
}

// MsgBlock returns the underlying wire.MsgBlock for the Block.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.msgBlock
}

// Bytes returns the serialized bytes for the Block.  This is equivalent to
// calling Serialize on the underlying wire.MsgBlock, however it caches the
// result so subsequent calls are more efficient.
func (b *Block) Bytes() []byte {
	b.bytesOnce.Do(func() {
		if b.serializedBlock == nil {
			b.serializedBlock = b.msgBlock.Bytes()
		}
	})
	return b.serializedBlock
}

// Hash returns the block identifier hash for the Block.  This is equivalent to
// calling BlockHash on the underlying wire.MsgBlock, however it caches the
// result so subsequent calls are more efficient.
func (b *Block) Hash() *chainhash.Hash {
	b.hashOnce.Do(func() {
		b.blockHash = b.msgBlock.BlockHash()
	})
	return &b.blockHash
}

// MerkleRoot returns the merkle root of the transactions of the Block,
// computed from the cached transaction hashes.
func (b *Block) MerkleRoot() chainhash.Hash {
	b.merkleOnce.Do(func() {
		txs := b.Transactions()
		hashes := make([]chainhash.Hash, len(txs))
		for i, tx := range txs {
			hashes[i] = *tx.Hash()
		}
		b.merkleRoot = chainhash.MerkleTreeRoot(hashes)
	})
	return b.merkleRoot
}

// Tx returns a wrapped transaction (zutil.Tx) for the transaction at the
// specified index in the Block.  The supplied index is 0 based.  That is to
// say, the first transaction in the block is txNum 0.
func (b *Block) Tx(txNum int) (*Tx, error) {
	// Ensure the requested transaction is in range.
	numTx := len(b.msgBlock.Transactions)
	if txNum < 0 || txNum >= numTx {
		str := fmt.Sprintf("transaction index %d is out of range - max %d",
			txNum, numTx-1)
		return nil, OutOfRangeError(str)
	}

	return b.Transactions()[txNum], nil
}

// Transactions returns a slice of wrapped transactions (zutil.Tx) for all
// transactions in the Block.
func (b *Block) Transactions() []*Tx {
	b.txsOnce.Do(func() {
		b.transactions = make([]*Tx, len(b.msgBlock.Transactions))
		for i, tx := range b.msgBlock.Transactions {
			newTx := NewTx(tx)
			newTx.SetIndex(i)
			b.transactions[i] = newTx
		}
	})
	return b.transactions
}

// TxHash returns the hash for the requested transaction number in the Block.
// The supplied index is 0 based.
func (b *Block) TxHash(txNum int) (*chainhash.Hash, error) {
	tx, err := b.Tx(txNum)
	if err != nil {
		return nil, err
	}

	return tx.Hash(), nil
}

// TxMerkleProof returns the merkle path of the transaction at txNum.
func (b *Block) TxMerkleProof(txNum int) ([]chainhash.Hash, error) {
	if _, err := b.Tx(txNum); err != nil {
		return nil, err
	}

	txs := b.Transactions()
	hashes := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		hashes[i] = *tx.Hash()
	}
	return chainhash.MerkleTreeProof(hashes, txNum)
}

// TxLoc returns the offsets and lengths of each transaction in a raw block.
// It is used to allow fast indexing into transactions within the raw byte
// stream.
func (b *Block) TxLoc() ([]wire.TxLoc, error) {
	rawMsg := b.Bytes()

	var mblock wire.MsgBlock
	txLocs, err := mblock.DeserializeTxLoc(bytes.NewBuffer(rawMsg))
	if err != nil {
		return nil, err
	}
	return txLocs, nil
}

// Height returns the saved height of the block in the block chain.  This value
// will be BlockHeightUnknown if it hasn't already explicitly been set.
func (b *Block) Height() int32 {
	return b.blockHeight
}

// SetHeight sets the height of the block in the block chain.
func (b *Block) SetHeight(height int32) {
	b.blockHeight = height
}

// NewBlock returns a new instance of a block given an underlying
// wire.MsgBlock.  See Block.
func NewBlock(msgBlock *wire.MsgBlock) *Block {
	return &Block{
		msgBlock:    msgBlock,
		blockHeight: BlockHeightUnknown,
	}
}

// NewBlockFromBytes returns a new instance of a block given the
// serialized bytes.  The bytes must hold exactly one block.  See Block.
func NewBlockFromBytes(serializedBlock []byte) (*Block, error) {
	msgBlock, err := wire.DecodeBlockExact(serializedBlock)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode block")
	}

	b := NewBlock(msgBlock)
	b.serializedBlock = serializedBlock
	return b, nil
}

// NewBlockFromHex returns a new instance of a block given its hex encoding.
// Malformed hex is reported as a *wire.HexError.
func NewBlockFromHex(s string) (*Block, error) {
	msgBlock, err := wire.NewMsgBlockFromHex(s)
	if err != nil {
		return nil, err
	}

	return NewBlock(msgBlock), nil
}
