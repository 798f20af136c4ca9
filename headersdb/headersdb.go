// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package headersdb implements an in-memory, hash-keyed block-header index
// optionally backed by an append-only file, grounded on spec.md's "HeadersDB"
// (§3) and "Headers DB file" (§4.8) sections.
package headersdb

import (
	"os"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/chaincfg"
)

// log is this package's subsystem logger, disabled until UseLogger is
// called, matching the teacher's logging convention (mining/randomx).
var log = btclog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Kind enumerates the headersdb-package error kinds from spec.md §7.
type Kind string

const (
	KindFileFormatInvalid   Kind = "FileFormatInvalid"
	KindHeaderLinkageFailure Kind = "HeaderLinkageFailure"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// Node is one entry in the header index: a header plus its resolved height
// and a pointer to its parent node (nil for genesis).
type Node struct {
	Hash   chainhash.Hash
	Height int32
	Header block.Header
	Prev   *Node
}

// DB is the in-memory ordered block-index tree, keyed by hash, optionally
// mirrored to an append-only file (spec.md §3 "HeadersDB").
type DB struct {
	mu     sync.RWMutex
	params *chaincfg.Params
	byHash map[chainhash.Hash]*Node
	tip    *Node
	bottom *Node // chain bottom bounding pruning: always the genesis node

	file *os.File
	path string
}

// New creates an in-memory-only headers DB seeded with params' genesis
// hash at height 0. It is not backed by a file; use Open to persist.
func New(params *chaincfg.Params) *DB {
	genesis := &Node{Hash: *params.GenesisHash, Height: 0}
	db := &DB{
		params: params,
		byHash: map[chainhash.Hash]*Node{genesis.Hash: genesis},
		tip:    genesis,
		bottom: genesis,
	}
	return db
}

// Tip returns the node of maximum height, the single designated active
// tip (spec.md §3 "at most one tip of maximum height is designated
// active").
func (db *DB) Tip() *Node {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.tip
}

// Bottom returns the chain-bottom node that bounds pruning; it is always
// the genesis node.
func (db *DB) Bottom() *Node {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.bottom
}

// NodeByHash looks up a node by its block hash.
func (db *DB) NodeByHash(hash chainhash.Hash) (*Node, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	n, ok := db.byHash[hash]
	return n, ok
}

// HeightOf reports the height of the node with the given hash.
func (db *DB) HeightOf(hash chainhash.Hash) (int32, bool) {
	n, ok := db.NodeByHash(hash)
	if !ok {
		return 0, false
	}
	return n.Height, true
}

// Connect links header onto the chain, requiring its PrevBlock to match an
// already-known node's hash (spec.md §3 "every non-genesis record's
// previous-hash field must match some earlier record's hash"). On success
// it updates the active tip and, when file-backed, appends and flushes the
// record.
func (db *DB) Connect(header *block.Header) (*Node, error) {
	hash := header.Hash()

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.byHash[hash]; exists {
		return db.byHash[hash], nil
	}

	parent, ok := db.byHash[header.PrevBlock]
	if !ok {
		return nil, &Error{KindHeaderLinkageFailure, "previous block not found in index"}
	}

	node := &Node{Hash: hash, Height: parent.Height + 1, Header: *header, Prev: parent}
	db.byHash[hash] = node
	if node.Height > db.tip.Height {
		db.tip = node
	}

	if db.file != nil {
		if err := db.appendRecord(node); err != nil {
			delete(db.byHash, hash)
			if db.tip == node {
				db.tip = parent
			}
			return nil, err
		}
	}

	log.Debugf("headersdb: connected %s at height %d", hash, node.Height)
	return node, nil
}

// Close flushes and closes the backing file, if any.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.file == nil {
		return nil
	}
	err := db.file.Close()
	db.file = nil
	return err
}

// BuildLocator constructs a block locator from the active tip: the most
// recent 10 hashes, then exponentially sparser hashes further back, ending
// with the chain bottom, the genesis node (spec.md §4.7 step 2).
// chaincfg.Params.Checkpoints are not consulted.
func (db *DB) BuildLocator() []chainhash.Hash {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var locator []chainhash.Hash
	step := int32(1)
	n := db.tip
	for n != nil {
		locator = append(locator, n.Hash)
		if n == db.bottom {
			break
		}
		if int32(len(locator)) >= 10 {
			step *= 2
		}
		for i := int32(0); i < step && n.Prev != nil; i++ {
			n = n.Prev
		}
		if n.Prev == nil && n != db.bottom {
			locator = append(locator, n.Hash)
			break
		}
	}
	return locator
}
