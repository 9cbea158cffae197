// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zutil

import (
	"bytes"
	"encoding/hex"
	"os"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/zblock/types/chainhash"
	"gitlab.com/jaxnet/zblock/types/wire"
	"gopkg.in/yaml.v3"
)

type fixtureBlock struct {
	Name       string `yaml:"name"`
	Hash       string `yaml:"hash"`
	MerkleRoot string `yaml:"merkle_root"`
	Hex        string `yaml:"hex"`
}

func loadFixtureBlocks(t *testing.T) []fixtureBlock {
	t.Helper()

	data, err := os.ReadFile("../types/wire/testdata/golden_blocks.yaml")
	require.NoError(t, err)

	var fixture struct {
		Blocks []fixtureBlock `yaml:"blocks"`
	}
	require.NoError(t, yaml.Unmarshal(data, &fixture))
	require.NotEmpty(t, fixture.Blocks)
	return fixture.Blocks
}

func TestBlockFromHex(t *testing.T) {
	for _, fb := range loadFixtureBlocks(t) {
		block, err := NewBlockFromHex(fb.Hex)
		require.NoError(t, err, fb.Name)

		assert.Equal(t, fb.Hash, block.Hash().String(), fb.Name)
		root := block.MerkleRoot()
		assert.Equal(t, fb.MerkleRoot, root.String(), fb.Name)
		assert.NoError(t, CheckMerkleRoot(block), fb.Name)
		assert.Equal(t, BlockHeightUnknown, block.Height())

		raw, err := hex.DecodeString(fb.Hex)
		require.NoError(t, err)
		assert.Equal(t, raw, block.Bytes(), fb.Name)
	}
}

func TestBlockFromBytes(t *testing.T) {
	fb := loadFixtureBlocks(t)[1]
	raw, err := hex.DecodeString(fb.Hex)
	require.NoError(t, err)

	block, err := NewBlockFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, fb.Hash, block.Hash().String())

	// the passed buffer is reused instead of re-encoding
	assert.True(t, &raw[0] == &block.Bytes()[0])

	txLocs, err := block.TxLoc()
	require.NoError(t, err)
	require.Len(t, txLocs, len(block.Transactions()))
	for i, loc := range txLocs {
		tx, err := NewTxFromBytes(raw[loc.TxStart : loc.TxStart+loc.TxLen])
		require.NoError(t, err)
		txHash, err := block.TxHash(i)
		require.NoError(t, err)
		assert.Equal(t, *txHash, *tx.Hash())
	}

	// trailing garbage is not a block
	_, err = NewBlockFromBytes(append(raw, 0x00))
	require.Error(t, err)
	assert.Equal(t, wire.ErrTrailingBytes, errors.Cause(err))
}

func TestTxFromBytes(t *testing.T) {
	fb := loadFixtureBlocks(t)[2]
	block, err := NewBlockFromHex(fb.Hex)
	require.NoError(t, err)

	for i, tx := range block.Transactions() {
		raw := wire.EncodeToBytes(tx.MsgTx())

		decoded, err := NewTxFromBytes(raw)
		require.NoError(t, err, "tx %d", i)
		assert.Equal(t, *tx.Hash(), *decoded.Hash(), "tx %d", i)

		// a following transaction or padding is not part of this one
		padded := append(append([]byte{}, raw...), raw[:4]...)
		_, err = NewTxFromBytes(padded)
		require.Error(t, err, "tx %d", i)
		assert.Equal(t, wire.ErrTrailingBytes, errors.Cause(err), "tx %d", i)

		_, err = NewTxFromBytes(raw[:len(raw)-1])
		assert.Error(t, err, "tx %d", i)
	}
}

func TestBlockFromHexMalformed(t *testing.T) {
	_, err := NewBlockFromHex("not hex")
	require.Error(t, err)
	assert.IsType(t, &wire.HexError{}, err)
}

func TestBlockTransactions(t *testing.T) {
	fb := loadFixtureBlocks(t)[2]
	block, err := NewBlockFromHex(fb.Hex)
	require.NoError(t, err)

	txs := block.Transactions()
	require.Equal(t, len(block.MsgBlock().Transactions), len(txs))
	for i, tx := range txs {
		assert.Equal(t, i, tx.Index())
		assert.Equal(t, block.MsgBlock().Transactions[i].TxHash(), *tx.Hash())

		same, err := block.Tx(i)
		require.NoError(t, err)
		assert.True(t, same == tx)

		path, err := block.TxMerkleProof(i)
		require.NoError(t, err)
		assert.True(t, chainhash.VerifyMerkleProof(*tx.Hash(), i, path, block.MerkleRoot()))
	}

	assert.True(t, txs[0].MsgTx().IsCoinBase())

	_, err = block.Tx(len(txs))
	assert.IsType(t, OutOfRangeError(""), err)
	_, err = block.Tx(-1)
	assert.IsType(t, OutOfRangeError(""), err)
	_, err = block.TxHash(len(txs))
	assert.Error(t, err)
	_, err = block.TxMerkleProof(len(txs))
	assert.Error(t, err)
}

func TestBlockEmpty(t *testing.T) {
	block := NewBlock(wire.NewMsgBlock(&wire.BlockHeader{}, nil))

	_, err := block.Tx(0)
	assert.Error(t, err)
	assert.Empty(t, block.Transactions())
	assert.Equal(t, chainhash.EmptyMerkleRoot, block.MerkleRoot())
	assert.NoError(t, CheckMerkleRoot(block))
}

func TestCheckMerkleRootMismatch(t *testing.T) {
	fb := loadFixtureBlocks(t)[0]
	msgBlock, err := wire.NewMsgBlockFromHex(fb.Hex)
	require.NoError(t, err)

	msgBlock.Header.MerkleRoot = chainhash.DoubleHashH([]byte("tampered"))
	err = CheckMerkleRoot(NewBlock(msgBlock))
	require.Error(t, err)
	assert.Equal(t, ErrBadMerkleRoot, errors.Cause(err))
	assert.Contains(t, err.Error(), fb.MerkleRoot)
}

func TestBlockConcurrentReaders(t *testing.T) {
	fb := loadFixtureBlocks(t)[2]
	block, err := NewBlockFromHex(fb.Hex)
	require.NoError(t, err)

	var wg sync.WaitGroup
	hashes := make([]string, 8)
	roots := make([]chainhash.Hash, 8)
	encodings := make([][]byte, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hashes[i] = block.Hash().String()
			roots[i] = block.MerkleRoot()
			encodings[i] = block.Bytes()
		}(i)
	}
	wg.Wait()

	for i := range hashes {
		assert.Equal(t, fb.Hash, hashes[i])
		assert.Equal(t, fb.MerkleRoot, roots[i].String())
		assert.True(t, bytes.Equal(encodings[0], encodings[i]))
	}
}

func TestTxValues(t *testing.T) {
	msgTx := wire.NewSaplingMsgTx(0)
	msgTx.AddTxOut(wire.NewTxOut(150000000, nil))
	msgTx.AddTxOut(wire.NewTxOut(50000000, nil))
	msgTx.ValueBalance = -25000

	tx := NewTx(msgTx)
	assert.Equal(t, TxIndexUnknown, tx.Index())
	assert.Equal(t, Amount(200000000), tx.TotalOut())
	assert.Equal(t, Amount(-25000), tx.ValueBalance())
	assert.False(t, tx.IsShielded())

	msgTx.ShieldedOutputs = []*wire.OutputDescription{{}}
	assert.True(t, tx.IsShielded())
}
