// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "github.com/urfave/cli/v2"

const (
	flagBlock    = "block"
	flagConfig   = "config"
	flagDataFile = "data-file"
	flagDump     = "dump"
	flagExpect   = "expect-hash"
	flagFile     = "file"
	flagLogLevel = "log-level"
	flagProof    = "proof"
)

var standardFlags = map[string]cli.Flag{
	flagConfig: &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Value:   "./zblock.yaml",
		EnvVars: []string{"ZBLOCK_CONFIG"},
		Usage:   "path to configuration, defaults are used when the file is missing",
	},
	flagLogLevel: &cli.StringFlag{
		Name:    flagLogLevel,
		Aliases: []string{"l"},
		EnvVars: []string{"ZBLOCK_LOG_LEVEL"},
		Usage:   "log level, will override value from config file",
	},
	flagBlock: &cli.StringFlag{
		Name:    flagBlock,
		Aliases: []string{"b"},
		Usage:   "hex-encoded body of block",
	},
	flagFile: &cli.StringFlag{
		Name:    flagFile,
		Aliases: []string{"f"},
		Usage:   "path to file with hex-encoded block, '-' reads stdin",
	},
	flagDump: &cli.BoolFlag{
		Name:    flagDump,
		Aliases: []string{"d"},
		Usage:   "dump all decoded fields",
	},
	flagProof: &cli.IntFlag{
		Name:    flagProof,
		Aliases: []string{"p"},
		Value:   -1,
		Usage:   "print the merkle path of the transaction with this index",
	},
	flagExpect: &cli.StringFlag{
		Name:    flagExpect,
		Aliases: []string{"e"},
		Usage:   "expected block hash, reversed hex",
	},
	flagDataFile: &cli.StringFlag{
		Name:    flagDataFile,
		Aliases: []string{"o"},
		EnvVars: []string{"ZBLOCK_DATA_FILE"},
		Usage:   "path to CSV output, will override value from config file; stdout when empty",
	},
}

// blockSourceFlags are shared by every command that reads a block.
func blockSourceFlags(extra ...string) []cli.Flag {
	flags := []cli.Flag{standardFlags[flagBlock], standardFlags[flagFile]}
	for _, name := range extra {
		flags = append(flags, standardFlags[name])
	}
	return flags
}
