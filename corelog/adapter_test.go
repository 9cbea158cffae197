// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{}.Default()
	cfg.DisableConsoleLog = true
	cfg.FileLoggingEnabled = true
	cfg.Directory = dir

	logger := New("test", zerolog.InfoLevel, cfg)
	logger.Info().Str("block", "00040fe8").Msg("decoded")
	logger.Debug().Msg("filtered out")

	data, err := os.ReadFile(filepath.Join(dir, DefaultLogFile))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"app":"zblock"`)
	assert.Contains(t, content, `"unit":"test"`)
	assert.Contains(t, content, `"block":"00040fe8"`)
	assert.Contains(t, content, "decoded")
	assert.NotContains(t, content, "filtered out")
}

func TestNewWithoutOutputs(t *testing.T) {
	logger := New("test", zerolog.InfoLevel, Config{DisableConsoleLog: true})
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestParsedLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "", want: DefaultLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "WARN", want: zerolog.WarnLevel},
		{level: "trace", want: zerolog.TraceLevel},
		{level: "loud", want: DefaultLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := Config{Level: tt.level}.ParsedLevel()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsedLevelKeepsCause(t *testing.T) {
	_, err := Config{Level: "loud"}.ParsedLevel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)

	cause := errors.Cause(err)
	assert.NotEqual(t, err, cause)
	assert.Contains(t, cause.Error(), "loud")
}
