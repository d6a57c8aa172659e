// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/assetledger/registryd/counter"
	"github.com/assetledger/registryd/fault"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// InvokeArguments - one invocation from a client
type InvokeArguments struct {
	Operation string   `json:"operation"`
	Arguments []string `json:"arguments"`
}

// InvokeReply - the result of an invocation
type InvokeReply struct {
	Result interface{} `json:"result"`
}

// Registry - the service exposed over RPC
type Registry struct {
	log        *logger.L
	limiter    *rate.Limiter
	dispatcher *Dispatcher
}

// wait out the limiter before running one invocation; clients that
// outrun the burst allowance are refused outright
func (r *Registry) throttle() error {
	reservation := r.limiter.Reserve()
	if !reservation.OK() {
		return fault.RateLimiting
	}
	time.Sleep(reservation.Delay())
	return nil
}

// Invoke - dispatch one named operation
func (r *Registry) Invoke(arguments *InvokeArguments, reply *InvokeReply) error {
	if err := r.throttle(); nil != err {
		return err
	}

	r.log.Infof("Registry.Invoke: %q %v", arguments.Operation, arguments.Arguments)

	result, err := r.dispatcher.Dispatch(arguments.Operation, arguments.Arguments)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// Create - build the RPC server and register the service
func Create(log *logger.L, dispatcher *Dispatcher) *rpc.Server {
	server := rpc.NewServer()
	err := server.Register(&Registry{
		log:        log,
		limiter:    rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		dispatcher: dispatcher,
	})
	logger.PanicIfError("rpc.Register", err)
	return server
}

var connectionCount counter.Counter

// ConnectionCount - number of connections currently being served
func ConnectionCount() uint64 {
	return connectionCount.Uint64()
}

// Serve - accept loop feeding connections to the server
//
// each connection is served on its own goroutine with the JSON codec;
// the loop ends when the listener closes
func Serve(log *logger.L, listener net.Listener, server *rpc.Server) {
	for {
		conn, err := listener.Accept()
		if nil != err {
			log.Infof("accept ended: %s", err)
			return
		}

		go func() {
			connectionCount.Increment()
			defer connectionCount.Decrement()

			codec := jsonrpc.NewServerCodec(conn)
			defer codec.Close()
			server.ServeCodec(codec)
		}()
	}
}
