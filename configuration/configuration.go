// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the daemon configuration
//
// the configuration file is a Lua program whose final expression is a
// table of settings
package configuration

import (
	"path/filepath"

	"github.com/assetledger/registryd/fault"
)

// LoggerType - log file settings, mirrors logger.Configuration
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// DatabaseType - storage engine settings
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	RichQuery bool   `gluamapper:"rich_query"`
}

// RPCType - invocation listener settings
type RPCType struct {
	Listen string `gluamapper:"listen"`
}

// Configuration - the full daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Database      DatabaseType `gluamapper:"database"`
	RPC           RPCType      `gluamapper:"rpc"`
	Logging       LoggerType   `gluamapper:"logging"`
}

// GetConfiguration - parse a configuration file over the defaults
func GetConfiguration(fileName string) (*Configuration, error) {

	config := &Configuration{
		Database: DatabaseType{
			RichQuery: true,
		},
		RPC: RPCType{
			Listen: "127.0.0.1:2130",
		},
		Logging: LoggerType{
			File:  "registryd.log",
			Size:  1048576,
			Count: 10,
			Levels: map[string]string{
				"DEFAULT": "info",
			},
		},
	}

	err := ParseConfigurationFile(fileName, config)
	if nil != err {
		return nil, err
	}

	if "" == config.DataDirectory {
		return nil, fault.MissingDataDirectory
	}

	// unset paths land under the data directory
	if "" == config.Database.Directory {
		config.Database.Directory = filepath.Join(config.DataDirectory, "registry.leveldb")
	}
	if "" == config.Logging.Directory {
		config.Logging.Directory = filepath.Join(config.DataDirectory, "log")
	}

	return config, nil
}
