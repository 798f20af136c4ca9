// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/dogeorg/dogecoin-core/chaincfg"
)

const (
	defaultLogFile    = "spvnode.log"
	defaultMaxPeers   = 10
	defaultDebugLevel = "info"
)

// config mirrors libdogecoin's spvnode CLI surface
// (original_source/src/cli/spvnode.c's long_options), translated to
// go-flags the way the rest of the btcsuite-derived corpus configures its
// daemons (SPEC_FULL.md §10).
type config struct {
	TestNet    bool   `long:"testnet" short:"t" description:"Use the test network"`
	RegTest    bool   `long:"regtest" short:"r" description:"Use the regression test network"`
	Peers      string `long:"peers" short:"i" description:"Comma-separated list of peer addresses to connect to"`
	Debug      bool   `long:"debug" short:"d" description:"Enable debug-level logging"`
	MaxPeers   int    `long:"maxnodes" short:"m" default:"10" description:"Maximum number of simultaneous peer connections"`
	Mnemonic   string `long:"mnemonic" short:"n" description:"BIP39 mnemonic to derive the wallet's master key from, instead of random entropy"`
	HeadersDB  string `long:"dbfile" short:"f" description:"Headers database file path (\"0\" for in-memory only)"`
	Continuous bool   `long:"continuous" short:"c" description:"Keep running and watching for new blocks after the initial sync completes"`
	Address    string `long:"address" short:"a" description:"Existing P2PKH address to import as the wallet's first watched address"`
	Checkpoint bool   `long:"checkpoint" short:"p" description:"Has no effect: header sync does not start from a checkpoint"`
	FullSync   bool   `long:"full_sync" short:"b" description:"Has no effect: the node always runs the same header-then-block sync"`
	Wallet     string `long:"wallet" short:"w" description:"Wallet file path"`
	Proxy      string `long:"proxy" description:"Dial peers through this SOCKS5 proxy address"`
	ProxyUser  string `long:"proxyuser" description:"SOCKS5 proxy username"`
	ProxyPass  string `long:"proxypass" description:"SOCKS5 proxy password"`
}

func (cfg *config) params() *chaincfg.Params {
	switch {
	case cfg.RegTest:
		return &chaincfg.RegressionNetParams
	case cfg.TestNet:
		return &chaincfg.TestNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

func (cfg *config) peerList() []string {
	if cfg.Peers == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(cfg.Peers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (cfg *config) headersFile(params *chaincfg.Params) string {
	if cfg.HeadersDB == "0" {
		return ""
	}
	if cfg.HeadersDB != "" {
		return cfg.HeadersDB
	}
	return params.Name + "_headers.db"
}

func (cfg *config) walletFile(params *chaincfg.Params) string {
	if cfg.Wallet != "" {
		return cfg.Wallet
	}
	return params.Name + "_wallet.db"
}

func loadConfig() (*config, []string, error) {
	cfg := config{MaxPeers: defaultMaxPeers}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remaining, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}
	if len(remaining) == 0 {
		return nil, nil, fmt.Errorf("no command given, expected: scan")
	}
	return &cfg, remaining, nil
}
