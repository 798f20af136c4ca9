// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/hdkey"
	"github.com/dogeorg/dogecoin-core/transaction"
	"github.com/dogeorg/dogecoin-core/txscript"
)

func masterNode(t *testing.T) *hdkey.Node {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	node, err := hdkey.NewMaster(seed, []byte(hdkey.DefaultSeedKey))
	require.NoError(t, err)
	return node
}

func coinbaseTxPaying(hash160 []byte, value int64) *transaction.Tx {
	script, err := txscript.BuildP2PKH(hash160)
	if err != nil {
		panic(err)
	}
	return &transaction.Tx{
		Version: 1,
		TxIn: []*transaction.TxIn{{
			PreviousOutPoint: transaction.OutPoint{Index: 0xffffffff},
			SignatureScript:  []byte{0x01, 0x02},
		}},
		TxOut: []*transaction.TxOut{{Value: value, PkScript: script}},
	}
}

func spendTx(prevTxid [32]byte, prevIndex uint32, toHash160 []byte, value int64) *transaction.Tx {
	script, err := txscript.BuildP2PKH(toHash160)
	if err != nil {
		panic(err)
	}
	return &transaction.Tx{
		Version: 1,
		TxIn: []*transaction.TxIn{{
			PreviousOutPoint: transaction.OutPoint{Hash: prevTxid, Index: prevIndex},
		}},
		TxOut: []*transaction.TxOut{{Value: value, PkScript: script}},
	}
}

func TestNextAddressIncrementsAndDerivesDistinctKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.dat")
	w, err := LoadOrCreate(path, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.NoError(t, w.SetMasterKey(masterNode(t)))

	n0, err := w.NextAddress()
	require.NoError(t, err)
	n1, err := w.NextAddress()
	require.NoError(t, err)

	require.NotEqual(t, n0.Hash160(), n1.Hash160())
	require.True(t, w.HasKey(n0.Hash160()))
	require.True(t, w.HasKey(n1.Hash160()))
}

// TestWalletReloadPreservesState is spec.md §8's "reloading W yields the
// same in-memory state" property: after deriving addresses and observing
// transactions, closing and reopening the wallet file must reproduce the
// watched set, balance, and next child index.
func TestWalletReloadPreservesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.dat")
	params := &chaincfg.RegressionNetParams

	w, err := LoadOrCreate(path, params)
	require.NoError(t, err)
	require.NoError(t, w.SetMasterKey(masterNode(t)))

	node, err := w.NextAddress()
	require.NoError(t, err)

	tx := coinbaseTxPaying(node.Hash160(), 5_000_000_000)
	require.NoError(t, w.CheckTransaction(tx, 10))
	require.NoError(t, w.Close())

	reopened, err := LoadOrCreate(path, params)
	require.NoError(t, err)

	require.True(t, reopened.HasKey(node.Hash160()))
	require.Equal(t, int64(5_000_000_000), reopened.Balance(10+coinbaseMaturity-1))
	unspent := reopened.ListUnspent(10 + coinbaseMaturity - 1)
	require.Len(t, unspent, 1)

	again, err := reopened.NextAddress()
	require.NoError(t, err)
	require.NotEqual(t, node.Hash160(), again.Hash160())
}

func TestCoinbaseMaturityGatesBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.dat")
	w, err := LoadOrCreate(path, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.NoError(t, w.SetMasterKey(masterNode(t)))

	node, err := w.NextAddress()
	require.NoError(t, err)

	tx := coinbaseTxPaying(node.Hash160(), 1000)
	require.NoError(t, w.CheckTransaction(tx, 100))

	require.Equal(t, int64(0), w.Balance(100)) // 1 confirmation, not mature
	require.Equal(t, int64(1000), w.Balance(100+coinbaseMaturity-1))
}

func TestCheckTransactionMarksSpentOutputsUnspendable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.dat")
	w, err := LoadOrCreate(path, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.NoError(t, w.SetMasterKey(masterNode(t)))

	a, err := w.NextAddress()
	require.NoError(t, err)
	b, err := w.NextAddress()
	require.NoError(t, err)

	fund := coinbaseTxPaying(a.Hash160(), 1000)
	require.NoError(t, w.CheckTransaction(fund, 1))
	require.Equal(t, int64(1000), w.Balance(1+coinbaseMaturity-1))

	spend := spendTx(fund.Txid(), 0, b.Hash160(), 900)
	require.NoError(t, w.CheckTransaction(spend, 2))

	require.Equal(t, int64(900), w.Balance(2))
}

func TestWatchAddressTracksBareHash160(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.dat")
	params := &chaincfg.RegressionNetParams
	w, err := LoadOrCreate(path, params)
	require.NoError(t, err)

	hash160 := make([]byte, 20)
	for i := range hash160 {
		hash160[i] = byte(i + 3)
	}
	require.NoError(t, w.WatchAddress(hash160))
	require.True(t, w.HasKey(hash160))

	tx := spendTx([32]byte{}, 0, hash160, 42)
	tx.TxIn[0].PreviousOutPoint.Index = 0xffffffff
	require.NoError(t, w.CheckTransaction(tx, 1))
	require.NoError(t, w.Close())

	reopened, err := LoadOrCreate(path, params)
	require.NoError(t, err)
	require.True(t, reopened.HasKey(hash160))
}
