// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/smartwallet-labs/walletfactory/codec"
)

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)

	c, err := New(nil)
	require.NoError(err)
	require.Equal("127.0.0.1", c.HTTPHost)
	require.Equal(9650, c.HTTPPort)
	require.Equal(logging.Info, c.LogLevel)
	require.Equal(codec.EmptyAddress, c.EntryPoint)
}

func TestConfigOverrides(t *testing.T) {
	require := require.New(t)
	entryPoint := codec.CreateAddress(0, ids.GenerateTestID())

	c, err := New([]byte(`{"httpPort": 1234, "entryPoint": "` + entryPoint.String() + `", "syncWrites": true}`))
	require.NoError(err)
	require.Equal(1234, c.HTTPPort)
	require.Equal(entryPoint, c.EntryPoint)
	require.True(c.SyncWrites)
	require.Equal("127.0.0.1", c.HTTPHost)
}

func TestConfigInvalid(t *testing.T) {
	require := require.New(t)

	_, err := New([]byte(`{`))
	require.Error(err)
}
