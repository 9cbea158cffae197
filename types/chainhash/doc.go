// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides abstracted hash functionality.
//
// This package provides a generic hash type and associated functions that
// allows the specific hash algorithm to be abstracted.
//
// Hashes are stored in the order they are produced by the hash function and
// displayed byte-reversed, which is the convention used by block explorers
// for block and transaction identifiers.
//
// The merkle functions fold an ordered list of transaction hashes into the
// single commitment stored in a block header:
//
//	         root = H(H01 || H22)
//	        /                    \
//	  H01 = H(h0 || h1)    H22 = H(h2 || h2)
//	   /        \              /
//	  h0        h1           h2
//
// where H is the double SHA-256 and the last node of an odd level is paired
// with itself.
package chainhash
