// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet implements the HD-node registry, watched-address set, and
// UTXO tracking described in spec.md §4.8, persisted to an append-only
// typed-record file (spec.md §4.8, §6 "Wallet DB file").
package wallet

import (
	"sync"

	"github.com/btcsuite/btclog"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/hdkey"
	"github.com/dogeorg/dogecoin-core/transaction"
	"github.com/dogeorg/dogecoin-core/txscript"
)

// log is this package's subsystem logger, matching the teacher's logging
// convention (mining/randomx).
var log = btclog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// coinbaseMaturity is the literal COINBASE_MATURITY constant from spec.md
// §4.8, independent of chaincfg.Params.CoinbaseMaturity (which models the
// real per-network consensus value for other consumers).
const coinbaseMaturity = 100

// Kind enumerates the wallet-package error kinds from spec.md §7.
type Kind string

const (
	KindFileFormatInvalid Kind = "FileFormatInvalid"
	KindNoMasterKey       Kind = "NoMasterKey"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// utxo is a tracked, currently-unspent output paying one of the wallet's
// watched hash160s.
type utxo struct {
	OutPoint  transaction.OutPoint
	Value     int64
	Hash160   [20]byte
	Height    int32
	Coinbase  bool
}

// walletTx is a recorded transaction relevant to the wallet.
type walletTx struct {
	Height int32
	Tx     *transaction.Tx
}

// Wallet is the HD-node registry, watched-address set, and UTXO tracker
// from spec.md §4.8.
type Wallet struct {
	mu sync.Mutex

	params *chaincfg.Params
	file   *walletFile

	master         *hdkey.Node
	nextChildIndex uint32

	nodesByHash160 map[[20]byte]*hdkey.Node // derived HD nodes, keyed by HASH160(pubkey)
	watchOnly      map[[20]byte]bool        // bare watch-only hash160s (SPEC_FULL.md §12)

	txs   map[[32]byte]*walletTx
	utxos map[transaction.OutPoint]*utxo
}

// LoadOrCreate opens path, replaying its records into a fresh Wallet, or
// creates a new empty file if path does not exist (spec.md §4.8
// "load_or_create").
func LoadOrCreate(path string, params *chaincfg.Params) (*Wallet, error) {
	w := &Wallet{
		params:         params,
		nodesByHash160: make(map[[20]byte]*hdkey.Node),
		watchOnly:      make(map[[20]byte]bool),
		txs:            make(map[[32]byte]*walletTx),
		utxos:          make(map[transaction.OutPoint]*utxo),
	}

	f, records, err := openWalletFile(path, params)
	if err != nil {
		return nil, err
	}
	w.file = f

	for _, rec := range records {
		if err := w.applyRecord(rec); err != nil {
			return nil, err
		}
	}

	log.Debugf("wallet: loaded %s (%d records, next child index %d)", path, len(records), w.nextChildIndex)
	return w, nil
}

// HasMasterKey reports whether the wallet already holds a master HD key,
// so a caller (e.g. cmd/spvnode) knows whether it still needs to generate
// or import one before deriving addresses.
func (w *Wallet) HasMasterKey() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.master != nil
}

// SetMasterKey installs a (copied) master HD node and persists a MASTERKEY
// record (spec.md §4.8 "set_master_key (copies)").
func (w *Wallet) SetMasterKey(node *hdkey.Node) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	cp := *node
	w.master = &cp

	if w.file != nil {
		xpriv, err := node.Serialize(w.params, true)
		if err != nil {
			return err
		}
		return w.file.appendMasterKey(xpriv)
	}
	return nil
}

// NextAddress derives the child at next_childindex from the master key,
// increments the index, persists a PUBKEYCACHE record, and returns the
// derived node (spec.md §4.8 "next_address").
func (w *Wallet) NextAddress() (*hdkey.Node, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.master == nil {
		return nil, &Error{KindNoMasterKey, "no master key set"}
	}

	node, err := w.master.Derive(w.nextChildIndex)
	if err != nil {
		return nil, err
	}
	hash160 := [20]byte{}
	copy(hash160[:], node.Hash160())
	w.nodesByHash160[hash160] = node
	w.nextChildIndex++

	if w.file != nil {
		xpub, err := node.Serialize(w.params, false)
		if err != nil {
			return nil, err
		}
		if err := w.file.appendPubkeyCache(hash160, xpub); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// WatchAddress adds a bare watch-only HASH160 with no corresponding HD
// node, for addresses the wallet does not hold the private key for
// (SPEC_FULL.md §12, supplementing spec.md §4.8's HD-only next_address /
// find_node_by_address).
func (w *Wallet) WatchAddress(hash160 []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var h [20]byte
	copy(h[:], hash160)
	w.watchOnly[h] = true

	if w.file != nil {
		return w.file.appendPubkeyCache(h, "")
	}
	return nil
}

// FindNodeByAddress looks up the HD node owning hash160, if any.
func (w *Wallet) FindNodeByAddress(hash160 []byte) (*hdkey.Node, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var h [20]byte
	copy(h[:], hash160)
	n, ok := w.nodesByHash160[h]
	return n, ok
}

// HasKey reports whether hash160 is watched, either via an HD node or a
// bare watch-only entry.
func (w *Wallet) HasKey(hash160 []byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	var h [20]byte
	copy(h[:], hash160)
	if _, ok := w.nodesByHash160[h]; ok {
		return true
	}
	return w.watchOnly[h]
}

func (w *Wallet) isWatched(hash160 []byte) bool {
	var h [20]byte
	copy(h[:], hash160)
	if _, ok := w.nodesByHash160[h]; ok {
		return true
	}
	return w.watchOnly[h]
}

// outputHash160 extracts the embedded HASH160 from a P2PKH/P2SH/P2WPKH
// output script, if any.
func (w *Wallet) outputHash160(out *transaction.TxOut) ([20]byte, bool) {
	class := txscript.Classify(out.PkScript)
	if len(class.Hash) != 20 {
		return [20]byte{}, false
	}
	var h [20]byte
	copy(h[:], class.Hash)
	return h, true
}

// CheckTransaction classifies tx's outputs and inputs against the watched
// set, recording it and updating the UTXO set as described in spec.md
// §4.8.
func (w *Wallet) CheckTransaction(tx *transaction.Tx, height int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	txid := tx.Txid()
	isCoinbase := tx.IsCoinbase()
	relevant := false

	for i, out := range tx.TxOut {
		h160, ok := w.outputHash160(out)
		if !ok || !w.isWatched(h160[:]) {
			continue
		}
		relevant = true
		op := transaction.OutPoint{Hash: txid, Index: uint32(i)}
		w.utxos[op] = &utxo{OutPoint: op, Value: out.Value, Hash160: h160, Height: height, Coinbase: isCoinbase}
	}

	for _, in := range tx.TxIn {
		if _, spent := w.utxos[in.PreviousOutPoint]; spent {
			delete(w.utxos, in.PreviousOutPoint)
			relevant = true
		}
	}

	if relevant {
		w.txs[txid] = &walletTx{Height: height, Tx: tx}
		if w.file != nil {
			return w.file.appendTx(height, txid, tx.Serialize())
		}
	}
	return nil
}

// Balance sums unspent, watched outputs, applying the coinbase maturity
// constraint at currentHeight (spec.md §4.8).
func (w *Wallet) Balance(currentHeight int32) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	var total int64
	for _, u := range w.utxos {
		if w.matured(u, currentHeight) {
			total += u.Value
		}
	}
	return total
}

func (w *Wallet) matured(u *utxo, currentHeight int32) bool {
	if !u.Coinbase {
		return true
	}
	if u.Height <= 0 {
		return false
	}
	confirmations := currentHeight - u.Height + 1
	return confirmations >= coinbaseMaturity
}

// UnspentOutput describes one spendable watched output.
type UnspentOutput struct {
	OutPoint transaction.OutPoint
	Value    int64
	Hash160  [20]byte
	Height   int32
}

// ListUnspent returns every matured, unspent watched output.
func (w *Wallet) ListUnspent(currentHeight int32) []UnspentOutput {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []UnspentOutput
	for _, u := range w.utxos {
		if w.matured(u, currentHeight) {
			out = append(out, UnspentOutput{OutPoint: u.OutPoint, Value: u.Value, Hash160: u.Hash160, Height: u.Height})
		}
	}
	return out
}

// ListAddresses returns the base58check P2PKH form of every HD-derived
// watched address.
func (w *Wallet) ListAddresses() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for h160 := range w.nodesByHash160 {
		out = append(out, crypto.Base58CheckEncode(w.params.PubKeyHashAddrID, h160[:]))
	}
	return out
}

// Close flushes and closes the backing file, if any.
func (w *Wallet) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.close()
}
