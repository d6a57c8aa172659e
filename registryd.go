// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// registryd - the asset registry daemon
//
// maintains the indexed asset store and serves invocations over a
// JSON-RPC listener
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/assetledger/registryd/configuration"
	"github.com/assetledger/registryd/query"
	"github.com/assetledger/registryd/registry"
	"github.com/assetledger/registryd/rpc"
	"github.com/assetledger/registryd/storage"
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	var configFile string

	app := cli.NewApp()
	app.Name = "registryd"
	app.Usage = "asset registry daemon"
	app.Version = Version()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, c",
			Value:       "registryd.conf",
			Usage:       "registryd configuration file",
			Destination: &configFile,
		},
	}
	app.Action = func(c *cli.Context) error {
		run(configFile)
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: %s", app.Name, err)
	}
}

func run(configFile string) {

	config, err := configuration.GetConfiguration(configFile)
	if nil != err {
		exitwithstatus.Message("configuration: %s", err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: config.Logging.Directory,
		File:      config.Logging.File,
		Size:      config.Logging.Size,
		Count:     config.Logging.Count,
		Console:   config.Logging.Console,
		Levels:    config.Logging.Levels,
	})
	if nil != err {
		exitwithstatus.Message("logger: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Info("starting…")

	err = storage.Initialise(config.Database.Directory, config.Database.RichQuery)
	if nil != err {
		log.Criticalf("storage: %s", err)
		exitwithstatus.Message("storage: %s", err)
	}
	defer storage.Finalise()

	r := registry.New(logger.New("registry"), storage.Pool.Assets, storage.Pool.Index)
	e := query.New(logger.New("query"), storage.Pool.Assets)
	dispatcher := rpc.NewDispatcher(logger.New("dispatch"), r, e)
	server := rpc.Create(logger.New("rpc"), dispatcher)

	listener, err := net.Listen("tcp", config.RPC.Listen)
	if nil != err {
		log.Criticalf("listen: %s", err)
		exitwithstatus.Message("listen: %s", err)
	}
	log.Infof("listening: %s", config.RPC.Listen)

	go rpc.Serve(logger.New("rpc"), listener, server)

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("signal: %v", sig)

	listener.Close()
	log.Info("shutting down…")
}
