// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zutil

import (
	"github.com/pkg/errors"
)

// ErrBadMerkleRoot is returned by CheckMerkleRoot when the merkle root stored
// in the header differs from the one computed over the transactions.
var ErrBadMerkleRoot = errors.New("block merkle root is invalid")

// CheckMerkleRoot verifies that the header of the block commits to its
// transaction list.  Nothing else about the block is checked.
func CheckMerkleRoot(block *Block) error {
	header := &block.MsgBlock().Header
	calculated := block.MerkleRoot()

	if header.MerkleRoot != calculated {
		log.Debug().
			Stringer("block", block.Hash()).
			Stringer("header_root", header.MerkleRoot).
			Stringer("calculated_root", calculated).
			Int("txs", len(block.MsgBlock().Transactions)).
			Msg("merkle root mismatch")

		return errors.Wrapf(ErrBadMerkleRoot, "block %s: header has %s, calculated %s",
			block.Hash(), header.MerkleRoot, calculated)
	}

	log.Trace().Stringer("block", block.Hash()).Msg("merkle root matches")
	return nil
}
