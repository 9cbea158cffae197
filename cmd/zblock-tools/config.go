// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/zblock/corelog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log corelog.Config `yaml:"log"`
	// DataFile is where the txs command writes its CSV rows.
	DataFile string `yaml:"data_file"`
	// SpewDepth limits the nesting printed by decode --dump, 0 is unlimited.
	SpewDepth int `yaml:"spew_depth"`
}

func defaultConfig() Config {
	return Config{
		Log: corelog.Config{}.Default(),
	}
}

// parseConfig reads the YAML file at path over the defaults.  A missing file
// is only an error when required is set.
func parseConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()

	rawFile, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "Unable to read configuration")
	}

	if err = yaml.Unmarshal(rawFile, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "Unable to decode configuration")
	}

	if _, err = cfg.Log.ParsedLevel(); err != nil {
		return Config{}, errors.Wrap(err, "Invalid log configuration")
	}

	return cfg, nil
}
