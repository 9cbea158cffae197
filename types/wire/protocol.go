// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

const (
	// MaxBlockPayload is the maximum bytes a block can be.
	MaxBlockPayload = 2000000

	// EquihashSolutionSize is the size of an Equihash(200, 9) solution, the
	// parameters used on main and test networks.
	EquihashSolutionSize = 1344

	// MaxSolutionSize bounds the solution read from an encoded header.
	MaxSolutionSize = EquihashSolutionSize

	// NonceSize is the length of the header nonce.
	NonceSize = 32

	// MaxBlockHeaderPayload is the maximum number of bytes a block header can be.
	// Version 4 bytes + PrevBlock, MerkleRoot and FinalSaplingRoot hashes +
	// Timestamp 4 bytes + Bits 4 bytes + Nonce 32 bytes + Solution.
	MaxBlockHeaderPayload = 4 + 32*3 + 4 + 4 + NonceSize +
		MaxVarIntPayload + MaxSolutionSize
)
