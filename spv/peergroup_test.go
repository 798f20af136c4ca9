// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spv

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/headersdb"
	"github.com/dogeorg/dogecoin-core/transaction"
	dwire "github.com/dogeorg/dogecoin-core/wire"
)

func testGroup(t *testing.T, cb Callbacks) (*PeerGroup, *headersdb.DB) {
	db := headersdb.New(&chaincfg.RegressionNetParams)
	g := NewPeerGroup(Config{
		Params:               &chaincfg.RegressionNetParams,
		Headers:              db,
		OldestItemOfInterest: time.Now(),
		Nonce:                1,
	}, cb)
	return g, db
}

func pipePeer(addr string) (*PeerSession, net.Conn) {
	clientConn, remoteConn := net.Pipe()
	return newPeerSession(addr, clientConn), remoteConn
}

func TestVersionHandshakeCompletesOverPipe(t *testing.T) {
	done := make(chan *PeerSession, 1)
	g, _ := testGroup(t, Callbacks{
		HandshakeDone: func(p *PeerSession) { done <- p },
	})

	p, remote := pipePeer("peer0")
	g.peers[p.Addr] = p
	go g.readLoop(p)

	stop := make(chan struct{})
	go g.Run(stop)
	defer close(stop)

	sendErr := make(chan error, 1)
	go func() { sendErr <- g.sendVersion(p) }()

	command, _, err := dwire.ReadMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)
	require.Equal(t, dwire.CmdVersion, command)
	require.NoError(t, <-sendErr)

	me := btcwire.NewNetAddressIPPort(net.IPv4zero, 0, btcwire.SFNodeNetwork)
	you := btcwire.NewNetAddressIPPort(net.IPv4zero, 0, btcwire.SFNodeNetwork)
	remoteVersion := btcwire.NewMsgVersion(me, you, 2, 100)
	require.NoError(t, dwire.WriteMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net), remoteVersion))

	command, _, err = dwire.ReadMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)
	require.Equal(t, dwire.CmdVerAck, command)
	require.NoError(t, dwire.WriteMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net), &btcwire.MsgVerAck{}))

	select {
	case got := <-done:
		require.Equal(t, StateHandshakeDone, got.State())
		require.Equal(t, int32(100), got.BestHeight())
	case <-time.After(2 * time.Second):
		t.Fatal("handshake did not complete")
	}
}

func TestMisbehaveDisconnectsAtThreshold(t *testing.T) {
	g, _ := testGroup(t, Callbacks{})
	p, remote := pipePeer("peer1")
	defer remote.Close()
	g.peers[p.Addr] = p

	g.misbehave(p, 99)
	require.Equal(t, StateConnected, p.State())
	_, tracked := g.peers[p.Addr]
	require.True(t, tracked)

	g.misbehave(p, 1)
	require.Equal(t, StateDisconnected, p.State())
	_, tracked = g.peers[p.Addr]
	require.False(t, tracked)
}

func TestCheckStallDisconnectsUnresponsiveHeaderSyncPeer(t *testing.T) {
	g, _ := testGroup(t, Callbacks{})
	p, remote := pipePeer("peer2")
	defer remote.Close()
	g.peers[p.Addr] = p
	p.state = StateHeaderSync

	now := time.Now().Unix()
	p.lastHeadersRequestTime = now - (headersResponseWindowSeconds + 1)

	g.checkStall(p, now)
	require.Equal(t, StateDisconnected, p.State())
}

func TestCheckStallDisconnectsUnresponsiveBlockDownload(t *testing.T) {
	g, _ := testGroup(t, Callbacks{})
	p, remote := pipePeer("peer3")
	defer remote.Close()
	g.peers[p.Addr] = p
	p.state = StateBlockSync
	p.outstandingBlocks[chainhash.Hash{1}] = true

	now := time.Now().Unix()
	p.lastBlockRequestTime = now - (blockResponseWindowSeconds + 1)

	g.checkStall(p, now)
	require.Equal(t, StateDisconnected, p.State())
}

func TestCheckCompletionFiresOnceWhenTwoPeersAgree(t *testing.T) {
	fired := 0
	g, db := testGroup(t, Callbacks{
		SyncCompleted: func() { fired++ },
	})

	tipHeight := db.Tip().Height
	for _, addr := range []string{"a", "b"} {
		p, remote := pipePeer(addr)
		defer remote.Close()
		p.state = StateHandshakeDone
		p.bestHeight = tipHeight
		g.peers[addr] = p
	}

	g.checkCompletion()
	require.Equal(t, 1, fired)

	g.checkCompletion()
	require.Equal(t, 1, fired, "SyncCompleted must fire at most once")
}

func TestCheckCompletionDoesNotFireWithOnlyOnePeerAgreeing(t *testing.T) {
	fired := 0
	g, db := testGroup(t, Callbacks{
		SyncCompleted: func() { fired++ },
	})

	p, remote := pipePeer("solo")
	defer remote.Close()
	p.state = StateHandshakeDone
	p.bestHeight = db.Tip().Height
	g.peers["solo"] = p

	g.checkCompletion()
	require.Equal(t, 0, fired)
}

func TestAdvanceHeaderSyncPicksCandidateAndSendsGetHeaders(t *testing.T) {
	g, db := testGroup(t, Callbacks{})
	g.cfg.OldestItemOfInterest = time.Unix(1<<31-1, 0) // far future, forces tipOlderThanInterest

	p, remote := pipePeer("headerpeer")
	defer remote.Close()
	p.state = StateHandshakeDone
	p.bestHeight = db.Tip().Height + 10
	g.peers[p.Addr] = p

	go g.advanceHeaderSync(time.Now().Unix())

	command, _, err := dwire.ReadMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)
	require.Equal(t, dwire.CmdGetHeaders, command)
	require.Equal(t, StateHeaderSync, p.State())
	require.Same(t, p, g.headerSyncPeer)
}

func childHeader(prevHash chainhash.Hash, timestamp uint32) *block.Header {
	return &block.Header{
		Version:   1,
		PrevBlock: prevHash,
		Timestamp: timestamp,
		Bits:      0x1e0ffff0,
	}
}

func TestHandleInvSkipsAlreadyRequestedHash(t *testing.T) {
	g, _ := testGroup(t, Callbacks{})
	p, remote := pipePeer("invpeer")
	defer remote.Close()
	p.state = StateBlockSync
	g.peers[p.Addr] = p

	hash := chainhash.Hash{9}
	inv := btcwire.NewMsgInv()
	require.NoError(t, inv.AddInvVect(btcwire.NewInvVect(btcwire.InvTypeBlock, &hash)))
	var buf bytes.Buffer
	require.NoError(t, dwire.WriteMessage(&buf, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net), inv))
	_, payload, err := dwire.ReadMessage(&buf, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)

	go g.handleInv(p, payload, time.Now().Unix())
	_, _, err = dwire.ReadMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)
	require.True(t, p.outstandingBlocks[hash])
	require.True(t, g.seenInv.Contains(hash))

	// A second INV for the same hash is already known and must not be
	// re-requested (no GETDATA is sent this time).
	delete(p.outstandingBlocks, hash)
	g.handleInv(p, payload, time.Now().Unix())
	require.False(t, p.outstandingBlocks[hash])
}

func TestHandleHeadersConnectsAndFlipsToBlockSyncWhenInterestCrossed(t *testing.T) {
	g, db := testGroup(t, Callbacks{})

	genesisTimestamp := db.Tip().Header.Timestamp
	h1 := childHeader(db.Tip().Hash, genesisTimestamp+60)
	h2 := childHeader(h1.Hash(), genesisTimestamp+120)
	g.cfg.OldestItemOfInterest = time.Unix(int64(h2.Timestamp), 0)

	p, remote := pipePeer("syncpeer")
	defer remote.Close()
	p.state = StateHeaderSync
	g.peers[p.Addr] = p

	msg := &dwire.MsgHeaders{Headers: []*block.Header{h1, h2}}
	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	go g.handleHeaders(p, buf.Bytes(), time.Now().Unix())

	command, _, err := dwire.ReadMessage(remote, dwire.BitcoinNet(chaincfg.RegressionNetParams.Net))
	require.NoError(t, err)
	require.Equal(t, dwire.CmdGetBlocks, command)
	require.Equal(t, StateBlockSync, p.State())

	tip := db.Tip()
	require.Equal(t, h2.Hash(), tip.Hash)
	require.Equal(t, int32(2), tip.Height)
}

func sampleCoinbaseTx() *transaction.Tx {
	return &transaction.Tx{
		Version: 1,
		TxIn:    []*transaction.TxIn{{PreviousOutPoint: transaction.OutPoint{Index: 0xffffffff}, SignatureScript: []byte{0x01}}},
		TxOut:   []*transaction.TxOut{{Value: 5000000000, PkScript: []byte{0x6a}}},
	}
}

func TestHandleBlockConnectsWhenMerkleRootMatches(t *testing.T) {
	g, db := testGroup(t, Callbacks{})
	p, remote := pipePeer("blockpeer")
	defer remote.Close()
	p.state = StateBlockSync
	g.peers[p.Addr] = p

	tx := sampleCoinbaseTx()
	h := childHeader(db.Tip().Hash, db.Tip().Header.Timestamp+60)
	h.MerkleRoot = block.BuildMerkleRoot([]chainhash.Hash{chainhash.Hash(tx.Txid())})
	p.outstandingBlocks[h.Hash()] = true

	msg := &dwire.MsgBlock{Header: h, Transactions: []*transaction.Tx{tx}}
	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	g.handleBlock(p, buf.Bytes(), time.Now().Unix())

	require.Equal(t, h.Hash(), db.Tip().Hash)
	require.False(t, p.outstandingBlocks[h.Hash()])
	require.Zero(t, p.misbehavior)
}

// TestHandleBlockRejectsMismatchedMerkleRoot covers a peer that serves a
// transaction list not committed to by the block's own header: the block
// must not be connected to the headers DB, and the peer is penalized.
func TestHandleBlockRejectsMismatchedMerkleRoot(t *testing.T) {
	g, db := testGroup(t, Callbacks{})
	p, remote := pipePeer("badblockpeer")
	defer remote.Close()
	p.state = StateBlockSync
	g.peers[p.Addr] = p

	tx := sampleCoinbaseTx()
	h := childHeader(db.Tip().Hash, db.Tip().Header.Timestamp+60)
	h.MerkleRoot = chainhash.Hash{0xff} // does not match tx's hash
	p.outstandingBlocks[h.Hash()] = true

	msg := &dwire.MsgBlock{Header: h, Transactions: []*transaction.Tx{tx}}
	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	beforeTip := db.Tip().Hash
	g.handleBlock(p, buf.Bytes(), time.Now().Unix())

	require.Equal(t, beforeTip, db.Tip().Hash)
	require.True(t, p.outstandingBlocks[h.Hash()])
	require.Equal(t, misbehaviorDisconnectScore, p.misbehavior)
}
