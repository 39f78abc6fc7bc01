// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/smartwallet-labs/walletfactory/codec"
)

type JSONRPCClient struct {
	requester rpc.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		Name+".ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) ComputeAddress(ctx context.Context, owner codec.Address, salt ids.ID) (codec.Address, error) {
	resp := new(ComputeAddressReply)
	err := cli.requester.SendRequest(ctx,
		Name+".computeAddress",
		&ComputeAddressArgs{Owner: owner, Salt: salt},
		resp,
	)
	return resp.Address, err
}

func (cli *JSONRPCClient) CreateAccount(ctx context.Context, owner codec.Address, salt ids.ID) (codec.Address, bool, error) {
	resp := new(CreateAccountReply)
	err := cli.requester.SendRequest(ctx,
		Name+".createAccount",
		&CreateAccountArgs{Owner: owner, Salt: salt},
		resp,
	)
	return resp.Address, resp.Created, err
}

func (cli *JSONRPCClient) FundWallet(ctx context.Context, addr codec.Address, amount uint64) (uint64, error) {
	resp := new(FundWalletReply)
	err := cli.requester.SendRequest(ctx,
		Name+".fundWallet",
		&FundWalletArgs{Address: addr, Amount: amount},
		resp,
	)
	return resp.Balance, err
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(ctx,
		Name+".balance",
		&BalanceArgs{Address: addr},
		resp,
	)
	return resp.Amount, err
}
