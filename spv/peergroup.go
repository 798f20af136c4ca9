// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spv

import (
	"net"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/go-socks/socks"
	"github.com/decred/dcrd/lru"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/headersdb"
	"github.com/dogeorg/dogecoin-core/transaction"
	dwire "github.com/dogeorg/dogecoin-core/wire"
)

// seenInvCacheSize bounds the recently-seen-inventory cache (below) that
// keeps a GETBLOCKS/INV storm from re-requesting a block already in
// flight or already connected.
const seenInvCacheSize = 5000

// Kind enumerates the spv-package error kinds from spec.md §7.
type Kind string

const (
	KindPeerMisbehaving Kind = "PeerMisbehaving"
	KindStalled         Kind = "Stalled"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// Thresholds from spec.md §4.7 "Stall detection".
const (
	headersResponseWindowSeconds = 60
	blockResponseWindowSeconds   = 60
	stateCheckCadenceSeconds     = 5
	misbehaviorDisconnectScore   = 100
)

// Callbacks are the peer-group consumer hooks from spec.md §6
// "Peer-group callbacks".
type Callbacks struct {
	Log                     func(format string, args ...interface{}) int
	PostCommand             func(peer *PeerSession, command string, payload []byte)
	HandshakeDone           func(peer *PeerSession)
	ConnectionStateChanged  func(peer *PeerSession)
	PeriodicTimer           func(peer *PeerSession, now int64) bool
	HeaderMessageProcessed  func(peer *PeerSession, newTip *headersdb.Node) bool
	SyncTransaction         func(tx *transaction.Tx, indexInBlock int, blockNode *headersdb.Node)
	SyncCompleted           func()
}

// Config configures a PeerGroup.
type Config struct {
	Params               *chaincfg.Params
	Headers              *headersdb.DB
	DesiredPeers         int
	QuitWhenSynced       bool
	OldestItemOfInterest time.Time
	UserAgent            string
	Nonce                uint64

	// Proxy, when set, is a SOCKS5 proxy address ("host:port") that
	// Connect dials peers through instead of connecting directly.
	Proxy         string
	ProxyUser     string
	ProxyPass     string
}

type peerEvent struct {
	peer    *PeerSession
	command string
	payload []byte
	err     error
}

// PeerGroup maintains a collection of peer sessions, a desired connection
// count, and a periodic timer, running the sync protocol from spec.md
// §4.7 on a single-threaded cooperative event loop (spec.md §5).
type PeerGroup struct {
	cfg       Config
	callbacks Callbacks

	mu    sync.Mutex
	peers map[string]*PeerSession

	headerSyncPeer *PeerSession
	synced         bool

	// seenInv dedupes block inventory hashes across INV messages from
	// different peers so a block already in flight or already connected
	// is never requested twice.
	seenInv *lru.Cache

	events chan peerEvent
}

// NewPeerGroup constructs a PeerGroup; call Connect to seed peers and Run
// to start the event loop.
func NewPeerGroup(cfg Config, callbacks Callbacks) *PeerGroup {
	return &PeerGroup{
		cfg:       cfg,
		callbacks: callbacks,
		peers:     make(map[string]*PeerSession),
		seenInv:   lru.NewCache(seenInvCacheSize),
		events:    make(chan peerEvent, 64),
	}
}

// Connect dials addr and begins the version handshake. Connection I/O
// runs on a dedicated reader goroutine per peer, but every event it
// produces is drained and acted on exclusively by Run's single dispatcher
// goroutine — no peer, wallet, or headers-DB state is touched from the
// reader goroutines themselves (spec.md §5 "no locking").
func (g *PeerGroup) Connect(addr string) error {
	connecting := &PeerSession{Addr: addr, state: StateConnecting}
	g.mu.Lock()
	g.peers[addr] = connecting
	g.mu.Unlock()
	g.notifyStateChanged(connecting)

	conn, err := g.dial(addr)
	if err != nil {
		g.disconnect(connecting)
		return err
	}
	p := newPeerSession(addr, conn)

	g.mu.Lock()
	g.peers[addr] = p
	g.mu.Unlock()

	g.notifyStateChanged(p)
	go g.readLoop(p)
	return g.sendVersion(p)
}

// dial connects to addr directly, or through cfg.Proxy when configured
// (spec.md SPEC_FULL.md §11 "spv.PeerGroup can optionally dial peers
// through a SOCKS5 proxy").
func (g *PeerGroup) dial(addr string) (net.Conn, error) {
	if g.cfg.Proxy == "" {
		return net.DialTimeout("tcp", addr, 10*time.Second)
	}
	proxy := &socks.Proxy{
		Addr:     g.cfg.Proxy,
		Username: g.cfg.ProxyUser,
		Password: g.cfg.ProxyPass,
	}
	return proxy.Dial("tcp", addr)
}

// Peers returns a snapshot of the currently tracked peer sessions.
func (g *PeerGroup) Peers() []*PeerSession {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*PeerSession, 0, len(g.peers))
	for _, p := range g.peers {
		out = append(out, p)
	}
	return out
}

func (g *PeerGroup) readLoop(p *PeerSession) {
	for {
		command, payload, err := dwire.ReadMessage(p.conn, dwire.BitcoinNet(g.cfg.Params.Net))
		if err != nil {
			g.events <- peerEvent{peer: p, err: err}
			return
		}
		g.events <- peerEvent{peer: p, command: command, payload: payload}
	}
}

// Run is the single-threaded cooperative event loop (spec.md §5):
// suspension points are exclusively waiting for a peer message and the
// periodic timer tick. It returns when stop is closed.
func (g *PeerGroup) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(stateCheckCadenceSeconds * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			g.disconnectAll()
			return
		case ev := <-g.events:
			g.handleEvent(ev)
		case now := <-ticker.C:
			g.tick(now.Unix())
		}
	}
}

func (g *PeerGroup) handleEvent(ev peerEvent) {
	if ev.err != nil {
		g.disconnect(ev.peer)
		return
	}
	if g.callbacks.PostCommand != nil {
		g.callbacks.PostCommand(ev.peer, ev.command, ev.payload)
	}

	switch ev.command {
	case dwire.CmdVersion:
		g.handleVersion(ev.peer, ev.payload)
	case dwire.CmdVerAck:
		g.handleVerAck(ev.peer)
	case dwire.CmdHeaders:
		g.handleHeaders(ev.peer, ev.payload, time.Now().Unix())
	case dwire.CmdInv:
		g.handleInv(ev.peer, ev.payload, time.Now().Unix())
	case dwire.CmdBlock:
		g.handleBlock(ev.peer, ev.payload, time.Now().Unix())
	case dwire.CmdPing:
		g.handlePing(ev.peer, ev.payload)
	case dwire.CmdReject:
		g.misbehave(ev.peer, 1)
	}
}

func (g *PeerGroup) sendVersion(p *PeerSession) error {
	me := btcwire.NewNetAddressIPPort(net.IPv4zero, 0, btcwire.SFNodeNetwork)
	you := btcwire.NewNetAddressIPPort(net.IPv4zero, 0, btcwire.SFNodeNetwork)
	msg := btcwire.NewMsgVersion(me, you, g.cfg.Nonce, g.cfg.Headers.Tip().Height)
	msg.ProtocolVersion = int32(dwire.ProtocolVersion)
	if g.cfg.UserAgent != "" {
		_ = msg.AddUserAgent(g.cfg.UserAgent, "1.0")
	}
	p.versionSent = true
	return g.send(p, msg)
}

func (g *PeerGroup) handleVersion(p *PeerSession, payload []byte) {
	var v btcwire.MsgVersion
	if err := dwire.DecodeInto(payload, &v); err != nil {
		g.misbehave(p, 10)
		return
	}
	p.versionReceived = true
	p.services = uint64(v.Services)
	p.userAgent = v.UserAgent
	p.bestHeight = v.LastBlock
	p.protoVersion = uint32(v.ProtocolVersion)

	if !p.versionSent {
		_ = g.sendVersion(p)
	}
	_ = g.send(p, &btcwire.MsgVerAck{})
	g.maybeCompleteHandshake(p)
}

func (g *PeerGroup) handleVerAck(p *PeerSession) {
	p.verackReceived = true
	g.maybeCompleteHandshake(p)
}

func (g *PeerGroup) maybeCompleteHandshake(p *PeerSession) {
	if p.versionReceived && p.verackReceived && p.state == StateConnected {
		p.state = StateHandshakeDone
		g.notifyStateChanged(p)
		if g.callbacks.HandshakeDone != nil {
			g.callbacks.HandshakeDone(p)
		}
	}
}

func (g *PeerGroup) handlePing(p *PeerSession, payload []byte) {
	var ping btcwire.MsgPing
	if err := dwire.DecodeInto(payload, &ping); err != nil {
		return
	}
	_ = g.send(p, &btcwire.MsgPong{Nonce: ping.Nonce})
}

// interestCutoff is the oldest timestamp the header sync cares about
// (spec.md §4.7 "oldest_item_of_interest − 5·900 s").
func (g *PeerGroup) interestCutoff() int64 {
	return g.cfg.OldestItemOfInterest.Unix() - 5*900
}

func (g *PeerGroup) tipOlderThanInterest() bool {
	tip := g.cfg.Headers.Tip()
	return int64(tip.Header.Timestamp) < g.interestCutoff()
}

func (g *PeerGroup) interestCrossed(node *headersdb.Node) bool {
	return node != nil && int64(node.Header.Timestamp) >= g.interestCutoff()
}

func (g *PeerGroup) tick(now int64) {
	for _, p := range g.Peers() {
		if g.callbacks.PeriodicTimer != nil && g.callbacks.PeriodicTimer(p, now) {
			continue
		}
		g.checkStall(p, now)
	}
	g.advanceHeaderSync(now)
	g.checkCompletion()
}

// checkStall disconnects a peer that has gone unresponsive past the
// thresholds in spec.md §4.7 "Stall detection".
func (g *PeerGroup) checkStall(p *PeerSession, now int64) {
	if p.state == StateHeaderSync && now-p.lastHeadersRequestTime > headersResponseWindowSeconds {
		g.disconnect(p)
		return
	}
	if len(p.outstandingBlocks) > 0 && now-p.lastBlockRequestTime > blockResponseWindowSeconds {
		g.disconnect(p)
	}
}

// advanceHeaderSync drives spec.md §4.7's header-sync protocol: at most
// one peer group-wide is in HeaderSync at a time.
func (g *PeerGroup) advanceHeaderSync(now int64) {
	if g.headerSyncPeer != nil || !g.tipOlderThanInterest() {
		return
	}
	candidate := g.pickHeaderSyncCandidate()
	if candidate == nil {
		return
	}
	g.requestHeaders(candidate, now)
}

func (g *PeerGroup) pickHeaderSyncCandidate() *PeerSession {
	tipHeight := g.cfg.Headers.Tip().Height
	for _, p := range g.Peers() {
		if p.state == StateHandshakeDone && p.bestHeight > tipHeight {
			return p
		}
	}
	return nil
}

func (g *PeerGroup) requestHeaders(p *PeerSession, now int64) {
	msg := btcwire.NewMsgGetHeaders()
	for _, h := range g.cfg.Headers.BuildLocator() {
		h := h
		_ = msg.AddBlockLocatorHash(&h)
	}
	p.state = StateHeaderSync
	p.lastHeadersRequestTime = now
	g.headerSyncPeer = p
	g.notifyStateChanged(p)
	_ = g.send(p, msg)
}

func (g *PeerGroup) handleHeaders(p *PeerSession, payload []byte, now int64) {
	if p.state != StateHeaderSync {
		return
	}
	var m dwire.MsgHeaders
	if err := m.Decode(payload); err != nil {
		g.misbehaveAndReassignHeaderSync(p, now)
		return
	}

	var lastNode *headersdb.Node
	for _, h := range m.Headers {
		node, err := g.cfg.Headers.Connect(h)
		if err != nil {
			g.misbehaveAndReassignHeaderSync(p, now)
			return
		}
		lastNode = node
		if node.Height > p.bestHeight {
			p.bestHeight = node.Height
		}
	}

	if g.callbacks.HeaderMessageProcessed != nil && !g.callbacks.HeaderMessageProcessed(p, lastNode) {
		return
	}

	if g.interestCrossed(lastNode) {
		g.flipToBlockSync(p, now)
		return
	}

	if len(m.Headers) == dwire.MaxHeadersResults {
		g.requestHeaders(p, now)
		return
	}

	g.headerSyncPeer = nil
	p.state = StateHandshakeDone
	g.notifyStateChanged(p)
}

func (g *PeerGroup) misbehaveAndReassignHeaderSync(p *PeerSession, now int64) {
	g.headerSyncPeer = nil
	g.misbehave(p, 20)
	if next := g.pickHeaderSyncCandidate(); next != nil {
		g.requestHeaders(next, now)
	}
}

func (g *PeerGroup) flipToBlockSync(p *PeerSession, now int64) {
	g.headerSyncPeer = nil
	p.state = StateBlockSync
	g.notifyStateChanged(p)

	msg := btcwire.NewMsgGetBlocks(&chainhash.Hash{})
	for _, h := range g.cfg.Headers.BuildLocator() {
		h := h
		_ = msg.AddBlockLocatorHash(&h)
	}
	p.lastBlockRequestTime = now
	_ = g.send(p, msg)
}

func (g *PeerGroup) handleInv(p *PeerSession, payload []byte, now int64) {
	var m btcwire.MsgInv
	if err := dwire.DecodeInto(payload, &m); err != nil {
		g.misbehave(p, 5)
		return
	}

	var blockHashes []chainhash.Hash
	for _, iv := range m.InvList {
		if iv.Type != btcwire.InvTypeBlock {
			continue
		}
		if _, known := g.cfg.Headers.NodeByHash(iv.Hash); known {
			continue
		}
		if g.seenInv.Contains(iv.Hash) {
			continue
		}
		blockHashes = append(blockHashes, iv.Hash)
	}
	if len(blockHashes) == 0 {
		return
	}
	p.lastRequestedInv = blockHashes[len(blockHashes)-1]

	getdata := btcwire.NewMsgGetData()
	for _, h := range blockHashes {
		h := h
		_ = getdata.AddInvVect(btcwire.NewInvVect(btcwire.InvTypeBlock, &h))
		p.outstandingBlocks[h] = true
		g.seenInv.Add(h)
	}
	p.lastBlockRequestTime = now
	_ = g.send(p, getdata)
}

func (g *PeerGroup) handleBlock(p *PeerSession, payload []byte, now int64) {
	var m dwire.MsgBlock
	if err := m.Decode(payload); err != nil {
		g.misbehave(p, 20)
		return
	}

	if !blockMatchesMerkleRoot(m.Header, m.Transactions) {
		g.misbehave(p, 100)
		return
	}

	node, err := g.cfg.Headers.Connect(m.Header)
	if err != nil {
		g.misbehave(p, 20)
		return
	}
	delete(p.outstandingBlocks, node.Hash)
	if len(p.outstandingBlocks) > 0 {
		p.lastBlockRequestTime = now
	}

	if g.callbacks.SyncTransaction != nil {
		for i, tx := range m.Transactions {
			g.callbacks.SyncTransaction(tx, i, node)
		}
	}
}

// blockMatchesMerkleRoot rebuilds the transaction merkle root from a
// downloaded block's transaction list and checks it against the block's
// header, rejecting a peer that serves transactions not committed to by
// the header it claims to go with.
func blockMatchesMerkleRoot(header *block.Header, txs []*transaction.Tx) bool {
	if len(txs) == 0 {
		return false
	}
	leaves := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		leaves[i] = chainhash.Hash(tx.Txid())
	}
	return block.BuildMerkleRoot(leaves) == header.MerkleRoot
}

// checkCompletion implements spec.md §4.7 "Completion": synced once at
// least 2 connected, handshaken peers report the same best-height as the
// local tip.
func (g *PeerGroup) checkCompletion() {
	if g.synced {
		return
	}
	tipHeight := g.cfg.Headers.Tip().Height
	agreeing := 0
	for _, p := range g.Peers() {
		switch p.state {
		case StateHandshakeDone, StateHeaderSync, StateBlockSync:
			if p.bestHeight == tipHeight {
				agreeing++
			}
		}
	}
	if agreeing < 2 {
		return
	}
	g.synced = true
	if g.callbacks.SyncCompleted != nil {
		g.callbacks.SyncCompleted()
	}
	if g.cfg.QuitWhenSynced {
		g.disconnectAll()
	}
}

func (g *PeerGroup) misbehave(p *PeerSession, score int) {
	p.misbehavior += score
	if p.misbehavior >= misbehaviorDisconnectScore {
		g.disconnect(p)
	}
}

func (g *PeerGroup) disconnect(p *PeerSession) {
	g.mu.Lock()
	_, tracked := g.peers[p.Addr]
	delete(g.peers, p.Addr)
	g.mu.Unlock()
	if !tracked {
		return
	}
	if g.headerSyncPeer == p {
		g.headerSyncPeer = nil
	}
	p.state = StateDisconnected
	if p.conn != nil {
		_ = p.conn.Close()
	}
	g.notifyStateChanged(p)
}

func (g *PeerGroup) disconnectAll() {
	for _, p := range g.Peers() {
		g.disconnect(p)
	}
}

func (g *PeerGroup) notifyStateChanged(p *PeerSession) {
	if g.callbacks.ConnectionStateChanged != nil {
		g.callbacks.ConnectionStateChanged(p)
	}
}

// send writes any github.com/btcsuite/btcd/wire message type (MsgVersion,
// MsgVerAck, MsgGetHeaders, MsgGetBlocks, MsgInv, MsgGetData, MsgPing,
// MsgPong) to p's connection, framed under this group's network magic.
func (g *PeerGroup) send(p *PeerSession, msg btcwire.Message) error {
	return dwire.WriteMessage(p.conn, dwire.BitcoinNet(g.cfg.Params.Net), msg)
}
