// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zutil

import (
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/zblock/types/chainhash"
	"gitlab.com/jaxnet/zblock/types/wire"
)

// TxIndexUnknown is the value returned for a transaction index that is unknown.
// This is typically because the transaction has not been inserted into a block
// yet.
const TxIndexUnknown = -1

// Tx defines a transaction that provides easier and more efficient manipulation
// of raw transactions.  It also memoizes the hash for the transaction on its
// first access so subsequent accesses don't have to repeat the relatively
// expensive hashing operations.
//
// The wrapped message must not be modified once the Tx is in use.
type Tx struct {
	msgTx   *wire.MsgTx
	txIndex int

	hashOnce sync.Once
	txHash   chainhash.Hash
}

// MsgTx returns the underlying wire.MsgTx for the transaction.
func (t *Tx) MsgTx() *wire.MsgTx {
	return t.msgTx
}

// Hash returns the hash of the transaction.  This is equivalent to
// calling TxHash on the underlying wire.MsgTx, however it caches the
// result so subsequent calls are more efficient.
func (t *Tx) Hash() *chainhash.Hash {
	t.hashOnce.Do(func() {
		t.txHash = t.msgTx.TxHash()
	})
	return &t.txHash
}

// Index returns the saved index of the transaction within a block.  This value
// will be TxIndexUnknown if it hasn't already explicitly been set.
func (t *Tx) Index() int {
	return t.txIndex
}

// SetIndex sets the index of the transaction in within a block.
func (t *Tx) SetIndex(index int) {
	t.txIndex = index
}

// TotalOut returns the sum of the transparent outputs.
func (t *Tx) TotalOut() Amount {
	var total Amount
	for _, out := range t.msgTx.TxOut {
		total += Amount(out.Value)
	}
	return total
}

// ValueBalance returns the net value leaving the Sapling pool.  It is zero
// for transactions without Sapling components.
func (t *Tx) ValueBalance() Amount {
	return Amount(t.msgTx.ValueBalance)
}

// IsShielded reports whether the transaction carries any shielded component.
func (t *Tx) IsShielded() bool {
	tx := t.msgTx
	return len(tx.ShieldedSpends)+len(tx.ShieldedOutputs)+len(tx.JoinSplits) > 0
}

// NewTx returns a new instance of a transaction given an underlying
// wire.MsgTx.  See Tx.
func NewTx(msgTx *wire.MsgTx) *Tx {
	return &Tx{
		msgTx:   msgTx,
		txIndex: TxIndexUnknown,
	}
}

// NewTxFromBytes returns a new instance of a transaction given the
// serialized bytes.  The bytes must hold exactly one transaction.  See Tx.
func NewTxFromBytes(serializedTx []byte) (*Tx, error) {
	var msgTx wire.MsgTx
	n, err := wire.DecodeFromBytes(&msgTx, serializedTx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode transaction")
	}
	if n != len(serializedTx) {
		return nil, errors.Wrapf(wire.ErrTrailingBytes,
			"%d bytes after the transaction", len(serializedTx)-n)
	}

	return NewTx(&msgTx), nil
}
