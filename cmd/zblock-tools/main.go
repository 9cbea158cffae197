// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/zblock/corelog"
	"gitlab.com/jaxnet/zblock/types/chainhash"
	"gitlab.com/jaxnet/zblock/zutil"
)

func main() {
	app := &App{in: os.Stdin}
	err := app.cliApp().Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	config Config
	log    zerolog.Logger
	// in feeds --file -.
	in io.Reader
}

func (app *App) cliApp() *cli.App {
	return &cli.App{
		Name:     "zblock-tools",
		Usage:    "inspect hex-encoded zcash blocks",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
	}
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		standardFlags[flagConfig],
		standardFlags[flagLogLevel],
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	var err error
	app.config, err = parseConfig(c.String(flagConfig), c.IsSet(flagConfig))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if level := c.String(flagLogLevel); level != "" {
		app.config.Log.Level = level
	}

	level, err := app.config.Log.ParsedLevel()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	app.log = corelog.New("tools", level, app.config.Log)
	zutil.UseLogger(app.log)
	return nil
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "decode",
			Usage:  "decode hex encoded block and print its summary",
			Flags:  blockSourceFlags(flagDump),
			Action: app.decodeCmd,
		},
		{
			Name:   "hash",
			Usage:  "print the block hash",
			Flags:  blockSourceFlags(),
			Action: app.hashCmd,
		},
		{
			Name:   "merkle",
			Usage:  "print the merkle root computed over the block transactions",
			Flags:  blockSourceFlags(flagProof),
			Action: app.merkleCmd,
		},
		{
			Name:   "verify",
			Usage:  "check that the header commits to the block transactions",
			Flags:  blockSourceFlags(flagExpect),
			Action: app.verifyCmd,
		},
		{
			Name:   "txs",
			Usage:  "export the block transactions to CSV",
			Flags:  blockSourceFlags(flagDataFile),
			Action: app.txsCmd,
		},
	}
}

// readBlock decodes the block passed through --block or --file.
func (app *App) readBlock(c *cli.Context) (*zutil.Block, error) {
	var encoded string
	switch {
	case c.String(flagBlock) != "":
		encoded = c.String(flagBlock)

	case c.String(flagFile) == "-":
		raw, err := io.ReadAll(app.in)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read stdin")
		}
		encoded = string(raw)

	case c.String(flagFile) != "":
		raw, err := os.ReadFile(c.String(flagFile))
		if err != nil {
			return nil, errors.Wrap(err, "unable to read block file")
		}
		encoded = string(raw)

	default:
		return nil, errors.New("no block provided, use --block or --file")
	}

	encoded = string(bytes.TrimSpace([]byte(encoded)))
	block, err := zutil.NewBlockFromHex(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode block")
	}

	app.log.Debug().
		Stringer("block", block.Hash()).
		Int("txs", len(block.Transactions())).
		Msg("block decoded")
	return block, nil
}

func (app *App) decodeCmd(c *cli.Context) error {
	block, err := app.readBlock(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	out := c.App.Writer
	if c.Bool(flagDump) {
		dumper := spew.ConfigState{Indent: "  ", MaxDepth: app.config.SpewDepth}
		dumper.Fdump(out, block.MsgBlock())
		return nil
	}

	header := &block.MsgBlock().Header
	merkleRoot := block.MerkleRoot()
	fmt.Fprintf(out, "hash:               %s\n", block.Hash())
	fmt.Fprintf(out, "version:            %d\n", header.Version)
	fmt.Fprintf(out, "prev_block:         %s\n", header.PrevBlock)
	fmt.Fprintf(out, "merkle_root:        %s\n", header.MerkleRoot)
	fmt.Fprintf(out, "computed_root:      %s\n", merkleRoot)
	fmt.Fprintf(out, "final_sapling_root: %s\n", header.FinalSaplingRoot)
	fmt.Fprintf(out, "time:               %s\n", header.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "bits:               %08x\n", header.Bits)
	fmt.Fprintf(out, "solution_size:      %d\n", len(header.Solution))
	fmt.Fprintf(out, "size:               %d\n", len(block.Bytes()))
	fmt.Fprintf(out, "txs:                %d\n", len(block.Transactions()))
	for _, tx := range block.Transactions() {
		fmt.Fprintf(out, "  %d %s v%d\n", tx.Index(), tx.Hash(), tx.MsgTx().Version)
	}
	return nil
}

func (app *App) hashCmd(c *cli.Context) error {
	block, err := app.readBlock(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintln(c.App.Writer, block.Hash())
	return nil
}

func (app *App) merkleCmd(c *cli.Context) error {
	block, err := app.readBlock(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	merkleRoot := block.MerkleRoot()
	fmt.Fprintln(c.App.Writer, merkleRoot)

	index := c.Int(flagProof)
	if index < 0 {
		return nil
	}

	path, err := block.TxMerkleProof(index)
	if err != nil {
		return cli.NewExitError(errors.Wrapf(err, "unable to build proof for tx %d", index), 1)
	}
	for _, node := range path {
		fmt.Fprintln(c.App.Writer, node)
	}
	return nil
}

func (app *App) verifyCmd(c *cli.Context) error {
	block, err := app.readBlock(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if expected := c.String(flagExpect); expected != "" {
		want, err := chainhash.NewHashFromStr(expected)
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "invalid expected hash"), 1)
		}
		if !want.IsEqual(block.Hash()) {
			return cli.NewExitError(fmt.Sprintf("block hash mismatch: expected %s, got %s",
				want, block.Hash()), 1)
		}
	}

	if err = zutil.CheckMerkleRoot(block); err != nil {
		return cli.NewExitError(err, 1)
	}

	app.log.Info().Stringer("block", block.Hash()).Msg("block verified")
	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}

func (app *App) txsCmd(c *cli.Context) error {
	block, err := app.readBlock(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	dataFile := app.config.DataFile
	if c.String(flagDataFile) != "" {
		dataFile = c.String(flagDataFile)
	}

	rows := blockTxRows(block)
	if err = saveRows(rows, dataFile, c.App.Writer); err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to write CSV"), 1)
	}

	if dataFile != "" {
		app.log.Info().Str("path", dataFile).Int("rows", len(rows)).Msg("transactions exported")
	}
	return nil
}
