// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assetledger/registryd/configuration"
	"github.com/assetledger/registryd/fault"
)

func writeConfigFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "registryd.conf")
	err := os.WriteFile(fileName, []byte(content), 0o600)
	assert.NoError(t, err, "write config failed")
	return fileName
}

func TestGetConfiguration(t *testing.T) {

	fileName := writeConfigFile(t, `
local M = {}
M.data_directory = "/var/lib/registryd"
M.database = {
    rich_query = false,
}
M.rpc = {
    listen = "127.0.0.1:9999",
}
M.logging = {
    size = 65536,
    count = 5,
    levels = {
        DEFAULT = "debug",
    },
}
return M
`)

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "parse failed")

	assert.Equal(t, "/var/lib/registryd", config.DataDirectory)
	assert.False(t, config.Database.RichQuery)
	assert.Equal(t, "127.0.0.1:9999", config.RPC.Listen)
	assert.Equal(t, 65536, config.Logging.Size)
	assert.Equal(t, 5, config.Logging.Count)
	assert.Equal(t, "debug", config.Logging.Levels["DEFAULT"])

	// derived paths follow the data directory
	assert.Equal(t, "/var/lib/registryd/registry.leveldb", config.Database.Directory)
	assert.Equal(t, "/var/lib/registryd/log", config.Logging.Directory)
}

func TestGetConfigurationDefaults(t *testing.T) {

	fileName := writeConfigFile(t, `
local M = {}
M.data_directory = "/var/lib/registryd"
return M
`)

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "parse failed")

	assert.True(t, config.Database.RichQuery, "rich query not on by default")
	assert.Equal(t, "127.0.0.1:2130", config.RPC.Listen)
	assert.Equal(t, "registryd.log", config.Logging.File)
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {

	fileName := writeConfigFile(t, `
local M = {}
return M
`)

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.MissingDataDirectory, err, "wrong missing directory error")
}

func TestGetConfigurationMissingFile(t *testing.T) {

	_, err := configuration.GetConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Error(t, err, "missing file accepted")
}
