// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

const (
	// Name is the service name JSON-RPC methods are namespaced under.
	Name = "walletfactory"

	JSONRPCEndpoint = "/rpc"
)
