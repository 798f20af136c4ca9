// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command spvnode is a thin CLI wiring chaincfg.Params, wallet.Wallet,
// headersdb.DB, and spv.PeerGroup together, mirroring libdogecoin's
// spvnode tool (original_source/src/cli/spvnode.c). Per spec.md §1, all
// the actual client logic lives in the core packages; this binary only
// parses flags and wires them together.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dogeorg/dogecoin-core/addresses"
	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/hdkey"
	"github.com/dogeorg/dogecoin-core/headersdb"
	"github.com/dogeorg/dogecoin-core/mnemonic"
	"github.com/dogeorg/dogecoin-core/spv"
	"github.com/dogeorg/dogecoin-core/transaction"
	"github.com/dogeorg/dogecoin-core/wallet"
)

func main() {
	cfg, args, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if args[0] != "scan" {
		fmt.Fprintf(os.Stderr, "Invalid command %q (expected: scan)\n", args[0])
		os.Exit(1)
	}

	if err := initLogRotator(defaultLogFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not open log file:", err)
		os.Exit(1)
	}
	level := defaultDebugLevel
	if cfg.Debug {
		level = "debug"
	}
	setLogLevels(level)

	params := cfg.params()

	hdb, err := openHeadersDB(cfg, params)
	if err != nil {
		log.Errorf("could not load or create headers database: %v", err)
		os.Exit(1)
	}
	defer hdb.Close()

	w, err := openWallet(cfg, params)
	if err != nil {
		log.Errorf("could not load or create wallet: %v", err)
		os.Exit(1)
	}
	defer w.Close()

	printWalletSummary(w, hdb)

	peers := cfg.peerList()
	if len(peers) == 0 {
		fmt.Println("No --peers given; nothing to connect to.")
		os.Exit(1)
	}

	quitWhenSynced := !cfg.Continuous
	group := spv.NewPeerGroup(spv.Config{
		Params:               params,
		Headers:              hdb,
		DesiredPeers:         cfg.MaxPeers,
		QuitWhenSynced:       quitWhenSynced,
		OldestItemOfInterest: time.Now().Add(-30 * 24 * time.Hour),
		UserAgent:            "/dogecoin-core:spvnode/",
		Nonce:                newNonce(),
		Proxy:                cfg.Proxy,
		ProxyUser:            cfg.ProxyUser,
		ProxyPass:            cfg.ProxyPass,
	}, buildCallbacks(w, hdb, quitWhenSynced))

	fmt.Println("Discovering peers...")
	fmt.Println("Connecting to the p2p network...")
	for _, addr := range peers {
		if err := group.Connect(addr); err != nil {
			log.Warnf("could not connect to %s: %v", addr, err)
		}
	}

	stop := make(chan struct{})
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		close(stop)
	}()

	group.Run(stop)
}

// buildCallbacks wires spv.Callbacks to the wallet and the console output
// libdogecoin's spvnode.c produces (spv_header_message_processed,
// spv_sync_completed).
func buildCallbacks(w *wallet.Wallet, hdb *headersdb.DB, quitWhenSynced bool) spv.Callbacks {
	return spv.Callbacks{
		Log: func(format string, args ...interface{}) int {
			log.Debugf(format, args...)
			return 0
		},
		HeaderMessageProcessed: func(peer *spv.PeerSession, newTip *headersdb.Node) bool {
			if newTip != nil {
				fmt.Printf("New headers tip height %d\n", newTip.Height)
			}
			return true
		},
		SyncTransaction: func(tx *transaction.Tx, indexInBlock int, blockNode *headersdb.Node) {
			if err := w.CheckTransaction(tx, blockNode.Height); err != nil {
				log.Warnf("wallet: rejecting transaction at height %d: %v", blockNode.Height, err)
			}
		},
		SyncCompleted: func() {
			fmt.Printf("Sync completed, balance: %d\n", w.Balance(hdb.Tip().Height))
			if !quitWhenSynced {
				fmt.Println("Waiting for new blocks or relevant transactions...")
			}
		},
	}
}

func openHeadersDB(cfg *config, params *chaincfg.Params) (*headersdb.DB, error) {
	path := cfg.headersFile(params)
	if path == "" {
		return headersdb.New(params), nil
	}
	return headersdb.Open(path, params)
}

// openWallet loads cfg's wallet file, creating a fresh master key (from
// --mnemonic, or random entropy otherwise) the first time, and importing
// --address as a watch-only address when the wallet has no keys yet
// (original_source/src/cli/spvnode.c's "scan" command).
func openWallet(cfg *config, params *chaincfg.Params) (*wallet.Wallet, error) {
	w, err := wallet.LoadOrCreate(cfg.walletFile(params), params)
	if err != nil {
		return nil, err
	}

	if w.HasMasterKey() {
		return w, nil
	}

	seed, err := walletSeed(cfg)
	if err != nil {
		return nil, err
	}
	master, err := hdkey.NewMaster(seed, []byte(hdkey.DefaultSeedKey))
	if err != nil {
		return nil, err
	}
	if err := w.SetMasterKey(master); err != nil {
		return nil, err
	}

	if cfg.Address != "" {
		addr, err := addresses.Parse(cfg.Address, params)
		if err != nil {
			return nil, err
		}
		if err := w.WatchAddress(addr.Hash[:]); err != nil {
			return nil, err
		}
		return w, nil
	}

	if _, err := w.NextAddress(); err != nil {
		return nil, err
	}
	return w, nil
}

func walletSeed(cfg *config) ([]byte, error) {
	if cfg.Mnemonic != "" {
		return mnemonic.Seed(cfg.Mnemonic, "")
	}
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func printWalletSummary(w *wallet.Wallet, hdb *headersdb.DB) {
	fmt.Printf("Wallet addresses: %v\n", w.ListAddresses())
	fmt.Printf("Wallet balance: %d\n", w.Balance(hdb.Tip().Height))
}

func newNonce() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	var n uint64
	for i, v := range b {
		n |= uint64(v) << (8 * uint(i))
	}
	return n
}
