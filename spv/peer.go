// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spv implements the peer-group SPV client: connection scheduling,
// the per-peer state machine, the headers/blocks sync protocol, stall
// detection, and sync completion, grounded on spec.md §4.7 and
// original_source/src/net/spv.c.
package spv

import (
	"net"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// State is a peer session's position in the state machine from spec.md
// §4.7: "Disconnected → Connecting → Connected → VersionHandshakeDone →
// {HeaderSync | BlockSync}".
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateHandshakeDone
	StateHeaderSync
	StateBlockSync
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateHandshakeDone:
		return "handshake-done"
	case StateHeaderSync:
		return "header-sync"
	case StateBlockSync:
		return "block-sync"
	default:
		return "unknown"
	}
}

// PeerSession is one connected (or connecting) peer and the bookkeeping
// its state machine needs: misbehaviour score, best-known height, and the
// timers the stall detector watches.
type PeerSession struct {
	Addr string
	conn net.Conn

	state          State
	services       uint64
	userAgent      string
	protoVersion   uint32
	bestHeight     int32
	misbehavior    int
	versionSent    bool
	verackReceived bool
	versionReceived bool

	lastHeadersRequestTime int64 // spec.md §4.7 step 1
	lastBlockRequestTime   int64 // spec.md §4.7 "peer.time_last_request"
	lastRequestedInv       chainhash.Hash

	// outstandingBlocks tracks block hashes requested via GETDATA but not
	// yet delivered, used by the stall detector (spec.md §4.7 "Stall
	// detection").
	outstandingBlocks map[chainhash.Hash]bool
}

func newPeerSession(addr string, conn net.Conn) *PeerSession {
	return &PeerSession{
		Addr:              addr,
		conn:              conn,
		state:             StateConnected,
		outstandingBlocks: make(map[chainhash.Hash]bool),
	}
}

// State reports the peer's current state.
func (p *PeerSession) State() State { return p.state }

// BestHeight reports the peer's self-reported chain height from its
// VERSION message.
func (p *PeerSession) BestHeight() int32 { return p.bestHeight }

// MisbehaviorScore reports the peer's accumulated misbehaviour score
// (spec.md §4.7 "misbehaviour scoring is additive").
func (p *PeerSession) MisbehaviorScore() int { return p.misbehavior }
