// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/dogeorg/dogecoin-core/headersdb"
	"github.com/dogeorg/dogecoin-core/wallet"
)

// logWriter sends bytes to both standard output and a rotating log file,
// the btcd/dcrd log.go convention this module's ambient stack follows
// (SPEC_FULL.md §10).
type logWriter struct {
	rotator *rotator.Rotator
}

func (w logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return w.rotator.Write(p)
}

var (
	backendLog *btclog.Backend
	log        btclog.Logger

	hdbLog btclog.Logger
	wltLog btclog.Logger
)

// initLogRotator opens logFile for write, rolling it as it grows, and
// wires every package's subsystem logger to the resulting backend. The
// spv package has no package-level logger — it reports through the
// per-call Callbacks.Log hook instead (see buildCallbacks in main.go).
func initLogRotator(logFile string) error {
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	backendLog = btclog.NewBackend(logWriter{rotator: r})

	log = backendLog.Logger("SPVN")
	hdbLog = backendLog.Logger("HDB")
	wltLog = backendLog.Logger("WLT")
	headersdb.UseLogger(hdbLog)
	wallet.UseLogger(wltLog)
	return nil
}

// setLogLevels applies levelStr (e.g. "info", "debug") to every subsystem
// logger this binary wired above.
func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		return
	}
	log.SetLevel(level)
	hdbLog.SetLevel(level)
	wltLog.SetLevel(level)
}
