// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlset/fault"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	fileName := filepath.Join(dir, "avlset.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600))
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
return {
    key_type = "String",
    show_detail = true,
    check_after_update = true,
    logging = {
        directory = "logs",
        file = "set.log",
        size = 4096,
        count = 2,
        console = false,
        levels = {
            DEFAULT = "info",
        },
    },
}
`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, keyTypeString, options.KeyType)
	assert.True(t, options.ShowDetail)
	assert.True(t, options.CheckAfterUpdate)
	assert.Equal(t, filepath.Join(dir, "logs"), options.Logging.Directory)
	assert.Equal(t, "set.log", options.Logging.File)
	assert.Equal(t, 4096, options.Logging.Size)
	assert.Equal(t, 2, options.Logging.Count)
	assert.Equal(t, "info", options.Logging.Levels[logger.DefaultTag])
	assert.DirExists(t, options.Logging.Directory)
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return {}`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, keyTypeInteger, options.KeyType)
	assert.False(t, options.ShowDetail)
	assert.False(t, options.CheckAfterUpdate)
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory)
	assert.Equal(t, defaultLogFile, options.Logging.File)
	assert.Equal(t, defaultLogSize, options.Logging.Size)
	assert.Equal(t, defaultLogCount, options.Logging.Count)
}

func TestGetConfigurationErrors(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { key_type = "float" }`)
	_, err := getConfiguration(fileName)
	assert.ErrorIs(t, err, fault.ErrInvalidKeyType)

	_, fileName = writeConfiguration(t, `return { logging = { file = "sub/set.log" } }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)

	_, err = getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.True(t, fault.IsErrNotFound(err))
}
