// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gitlab.com/jaxnet/zblock/zutil"
)

// TxRow is one transaction of a block as written by the txs command.
type TxRow struct {
	Block           string  `csv:"block"`
	Index           int     `csv:"index"`
	TxID            string  `csv:"txid"`
	Version         int32   `csv:"version"`
	Overwintered    bool    `csv:"overwintered"`
	Coinbase        bool    `csv:"coinbase"`
	Inputs          int     `csv:"inputs"`
	Outputs         int     `csv:"outputs"`
	ShieldedSpends  int     `csv:"shielded_spends"`
	ShieldedOutputs int     `csv:"shielded_outputs"`
	JoinSplits      int     `csv:"joinsplits"`
	TotalOut        int64   `csv:"total_out_zat"`
	TotalOutZEC     float64 `csv:"total_out_zec"`
	ValueBalance    int64   `csv:"value_balance_zat"`
	Size            int     `csv:"size"`
}

func blockTxRows(block *zutil.Block) []TxRow {
	blockHash := block.Hash().String()

	rows := make([]TxRow, 0, len(block.Transactions()))
	for _, tx := range block.Transactions() {
		msgTx := tx.MsgTx()
		rows = append(rows, TxRow{
			Block:           blockHash,
			Index:           tx.Index(),
			TxID:            tx.Hash().String(),
			Version:         msgTx.Version,
			Overwintered:    msgTx.Overwintered,
			Coinbase:        msgTx.IsCoinBase(),
			Inputs:          len(msgTx.TxIn),
			Outputs:         len(msgTx.TxOut),
			ShieldedSpends:  len(msgTx.ShieldedSpends),
			ShieldedOutputs: len(msgTx.ShieldedOutputs),
			JoinSplits:      len(msgTx.JoinSplits),
			TotalOut:        int64(tx.TotalOut()),
			TotalOutZEC:     tx.TotalOut().ToZEC(),
			ValueBalance:    int64(tx.ValueBalance()),
			Size:            msgTx.SerializeSize(),
		})
	}
	return rows
}

// saveRows writes rows to path, truncating it, or to w when path is empty.
func saveRows(rows []TxRow, path string, w io.Writer) error {
	if path == "" {
		return gocsv.Marshal(rows, w)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(rows, file)
}
