// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/smartwallet-labs/walletfactory/codec"
)

type JSONRPCServer struct {
	f Factory
}

func NewJSONRPCServer(f Factory) *JSONRPCServer {
	return &JSONRPCServer{f}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (*JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	reply.Success = true
	return nil
}

type ComputeAddressArgs struct {
	Owner codec.Address `json:"owner"`
	Salt  ids.ID        `json:"salt"`
}

type ComputeAddressReply struct {
	Address codec.Address `json:"address"`
}

func (j *JSONRPCServer) ComputeAddress(
	_ *http.Request,
	args *ComputeAddressArgs,
	reply *ComputeAddressReply,
) error {
	reply.Address = j.f.ComputeAddress(args.Owner, args.Salt)
	return nil
}

type CreateAccountArgs struct {
	Owner codec.Address `json:"owner"`
	Salt  ids.ID        `json:"salt"`
}

type CreateAccountReply struct {
	Address codec.Address `json:"address"`
	Created bool          `json:"created"`
}

func (j *JSONRPCServer) CreateAccount(
	req *http.Request,
	args *CreateAccountArgs,
	reply *CreateAccountReply,
) error {
	addr, created, err := j.f.CreateAccount(req.Context(), args.Owner, args.Salt)
	if err != nil {
		return err
	}
	reply.Address = addr
	reply.Created = created
	return nil
}

type FundWalletArgs struct {
	Address codec.Address `json:"address"`
	Amount  uint64        `json:"amount"`
}

type FundWalletReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) FundWallet(
	req *http.Request,
	args *FundWalletArgs,
	reply *FundWalletReply,
) error {
	balance, err := j.f.FundWallet(req.Context(), args.Address, args.Amount)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type BalanceArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(
	req *http.Request,
	args *BalanceArgs,
	reply *BalanceReply,
) error {
	amount, err := j.f.Balance(req.Context(), args.Address)
	if err != nil {
		return err
	}
	reply.Amount = amount
	return nil
}
