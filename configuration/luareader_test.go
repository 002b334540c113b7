// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
)

type logging struct {
	Directory string            `gluamapper:"directory"`
	Size      int               `gluamapper:"size"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	KeyType string   `gluamapper:"key_type"`
	Detail  bool     `gluamapper:"show_detail"`
	Name    string   `gluamapper:"name"`
	Keys    []string `gluamapper:"keys"`
	Logging logging  `gluamapper:"logging"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local name = "set-" .. "one"
return {
    key_type = "string",
    show_detail = true,
    name = name,
    keys = { "b", "a" },
    logging = {
        directory = "log",
        size = 2 * 1024,
        levels = {
            DEFAULT = "info",
        },
    },
}
`)

	config := testConfiguration{
		KeyType: "integer",
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &config))

	assert.Equal(t, "string", config.KeyType)
	assert.True(t, config.Detail)
	assert.Equal(t, "set-one", config.Name)
	assert.Equal(t, []string{"b", "a"}, config.Keys)
	assert.Equal(t, "log", config.Logging.Directory)
	assert.Equal(t, 2048, config.Logging.Size)
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"])
}

// fields not in the file keep their defaults
func TestParseDefaults(t *testing.T) {
	fileName := writeFile(t, `return { show_detail = false }`)

	config := testConfiguration{
		KeyType: "integer",
		Name:    "default",
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &config))
	assert.Equal(t, "integer", config.KeyType)
	assert.Equal(t, "default", config.Name)
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
	assert.True(t, fault.IsErrNotFound(err))

	err = configuration.ParseConfigurationFile(writeFile(t, `return 42`), &config)
	assert.Equal(t, fault.ErrInvalidConfiguration, err)

	err = configuration.ParseConfigurationFile(writeFile(t, `return {`), &config)
	assert.Error(t, err)
}
