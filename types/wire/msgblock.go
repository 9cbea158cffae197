// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/zblock/types/chainhash"
)

// maxTxPerBlock is the maximum number of transactions that could
// possibly fit into a block.
const maxTxPerBlock = (MaxBlockPayload / minTxPayload) + 1

// TxLoc holds locator data for the offset and length of where a transaction is
// located within a MsgBlock data buffer.
type TxLoc struct {
	TxStart int
	TxLen   int
}

// MsgBlock is a block: a header followed by the ordered list of its
// transactions.
//
// Nothing derived from the transactions is stored.  The block hash is the
// header hash and the merkle root is recomputed on every call, so the
// header's MerkleRoot field is not required to match it.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// NewMsgBlock returns a new block with the passed header and transactions.
// The transaction list is used as is and may be empty.
func NewMsgBlock(blockHeader *BlockHeader, txs []*MsgTx) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: txs,
	}
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// Txs returns the ordered transaction list of the block.
func (msg *MsgBlock) Txs() []*MsgTx {
	return msg.Transactions
}

// Deserialize decodes a block from r into the receiver: the header, a
// transaction count and that many transactions.  Bytes after the last
// transaction are left in r.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	err := readBlockHeader(r, &msg.Header)
	if err != nil {
		return errors.Wrap(err, "unable to decode block header")
	}

	txCount, err := readCount(r, maxTxPerBlock, "MsgBlock.Deserialize", "transactions")
	if err != nil {
		return errors.Wrap(err, "unable to decode transaction count")
	}

	msg.Transactions = nil
	if txCount > 0 {
		msg.Transactions = make([]*MsgTx, 0, txCount)
	}
	for i := uint64(0); i < txCount; i++ {
		tx := MsgTx{}
		if err := tx.Deserialize(r); err != nil {
			return errors.Wrapf(err, "unable to decode transaction %d", i)
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	return nil
}

// DeserializeTxLoc decodes r in the same way Deserialize does, but it takes
// a byte buffer instead of a generic reader and returns a slice containing the
// start and length of each transaction within the raw data that is being
// deserialized.
func (msg *MsgBlock) DeserializeTxLoc(r *bytes.Buffer) ([]TxLoc, error) {
	fullLen := r.Len()

	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.  As a result, make use of
	// existing wire protocol functions.
	err := readBlockHeader(r, &msg.Header)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode block header")
	}

	txCount, err := readCount(r, maxTxPerBlock, "MsgBlock.DeserializeTxLoc", "transactions")
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode transaction count")
	}

	// Deserialize each transaction while keeping track of its location
	// within the byte stream.
	msg.Transactions = make([]*MsgTx, 0, txCount)
	txLocs := make([]TxLoc, txCount)
	for i := uint64(0); i < txCount; i++ {
		txLocs[i].TxStart = fullLen - r.Len()
		tx := MsgTx{}
		if err := tx.Deserialize(r); err != nil {
			return nil, errors.Wrapf(err, "unable to decode transaction %d", i)
		}
		msg.Transactions = append(msg.Transactions, &tx)
		txLocs[i].TxLen = (fullLen - r.Len()) - txLocs[i].TxStart
	}

	return txLocs, nil
}

// Serialize encodes the block to w.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	err := writeBlockHeader(w, &msg.Header)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}

	for i, tx := range msg.Transactions {
		if err = tx.Serialize(w); err != nil {
			return errors.Wrapf(err, "unable to encode transaction %d", i)
		}
	}

	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	// Block header bytes + Serialized varint size for the number of
	// transactions.
	n := msg.Header.SerializeSize() + VarIntSerializeSize(uint64(len(msg.Transactions)))

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// Bytes returns the canonical encoding of the block.
func (msg *MsgBlock) Bytes() []byte {
	return EncodeToBytes(msg)
}

// BlockHash computes the block identifier hash for this block.  It is the
// hash of the header alone.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// MerkleRoot computes the merkle root of the transaction hashes of the block.
// A block without transactions yields chainhash.EmptyMerkleRoot.
func (msg *MsgBlock) MerkleRoot() chainhash.Hash {
	return chainhash.MerkleTreeRoot(msg.TxHashes())
}

// TxMerkleProof returns the merkle path proving that the transaction at
// index is committed to by MerkleRoot.
func (msg *MsgBlock) TxMerkleProof(index int) ([]chainhash.Hash, error) {
	return chainhash.MerkleTreeProof(msg.TxHashes(), index)
}

// DecodeBlock decodes a block from the front of b.  Bytes after the block are
// ignored; the number of bytes consumed is returned alongside the block.
func DecodeBlock(b []byte) (*MsgBlock, int, error) {
	var msg MsgBlock
	n, err := DecodeFromBytes(&msg, b)
	if err != nil {
		return nil, n, err
	}
	return &msg, n, nil
}

// DecodeBlockExact decodes a block that must span all of b.
func DecodeBlockExact(b []byte) (*MsgBlock, error) {
	msg, n, err := DecodeBlock(b)
	if err != nil {
		return nil, err
	}

	if n != len(b) {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes after block", len(b)-n)
	}
	return msg, nil
}

// NewMsgBlockFromHex decodes a hex-encoded block.  Malformed hex is reported
// as a *HexError; bytes that are not a block are reported as decode errors.
func NewMsgBlockFromHex(s string) (*MsgBlock, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, &HexError{Err: err}
	}

	msg, _, err := DecodeBlock(raw)
	return msg, err
}
