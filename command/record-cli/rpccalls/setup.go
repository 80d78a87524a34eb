// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/staterecord/address"
)

// Client - to hold RPC connections streams
type Client struct {
	conn      net.Conn
	client    *rpc.Client
	programID address.Address
	verbose   bool
	handle    io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a recordd
func NewClient(connect string, programID address.Address, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:      conn,
		client:    jsonrpc.NewClient(conn),
		programID: programID,
		verbose:   verbose,
		handle:    handle,
	}
	return r, nil
}

// Close - shutdown the recordd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}
