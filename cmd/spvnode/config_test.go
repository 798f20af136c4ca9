// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/chaincfg"
)

func TestConfigParamsSelectsNetworkByFlag(t *testing.T) {
	require.Same(t, &chaincfg.MainNetParams, (&config{}).params())
	require.Same(t, &chaincfg.TestNetParams, (&config{TestNet: true}).params())
	require.Same(t, &chaincfg.RegressionNetParams, (&config{RegTest: true}).params())
}

func TestConfigPeerListSplitsAndTrims(t *testing.T) {
	cfg := &config{Peers: " 1.2.3.4:22556, 5.6.7.8:22556 ,"}
	require.Equal(t, []string{"1.2.3.4:22556", "5.6.7.8:22556"}, cfg.peerList())
}

func TestConfigHeadersFileHonorsInMemorySentinel(t *testing.T) {
	cfg := &config{HeadersDB: "0"}
	require.Equal(t, "", cfg.headersFile(&chaincfg.MainNetParams))

	cfg = &config{}
	require.Equal(t, "mainnet_headers.db", cfg.headersFile(&chaincfg.MainNetParams))

	cfg = &config{HeadersDB: "custom.db"}
	require.Equal(t, "custom.db", cfg.headersFile(&chaincfg.MainNetParams))
}

func TestConfigWalletFileDefaultsPerNetwork(t *testing.T) {
	cfg := &config{}
	require.Equal(t, "mainnet_wallet.db", cfg.walletFile(&chaincfg.MainNetParams))

	cfg = &config{Wallet: "mine.db"}
	require.Equal(t, "mine.db", cfg.walletFile(&chaincfg.MainNetParams))
}
