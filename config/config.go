// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/smartwallet-labs/walletfactory/codec"
)

type Config struct {
	HTTPHost       string        `json:"httpHost"`
	HTTPPort       int           `json:"httpPort"`
	DatabaseDir    string        `json:"databaseDir"`
	AllowedOrigins []string      `json:"allowedOrigins"`
	LogLevel       logging.Level `json:"logLevel"`

	// EntryPoint parameterizes the account implementation template.
	EntryPoint codec.Address `json:"entryPoint"`

	// SyncWrites forces every db write to disk before returning.
	SyncWrites bool `json:"syncWrites"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		HTTPHost:       "127.0.0.1",
		HTTPPort:       9650,
		DatabaseDir:    ".walletfactory",
		AllowedOrigins: []string{"*"},
		LogLevel:       logging.Info,
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
