// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/chaincfg"
)

func connectChain(t *testing.T, db *DB, params *chaincfg.Params, n int) *Node {
	t.Helper()
	prevHash := *params.GenesisHash
	var last *Node
	for i := 0; i < n; i++ {
		h := &block.Header{
			Version:   1,
			PrevBlock: prevHash,
			Timestamp: uint32(1700000000 + i),
			Bits:      0x1e0ffff0,
			Nonce:     uint32(i),
		}
		node, err := db.Connect(h)
		require.NoError(t, err)
		prevHash = node.Hash
		last = node
	}
	return last
}

// TestHeadersDBReload is spec.md scenario 4: "After connecting 2000 headers
// to a fresh DB then closing, reopening must report chain tip height 2000
// and tip hash equal to the hash recorded in the last appended record."
func TestHeadersDBReload(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	path := filepath.Join(t.TempDir(), "headers.dat")

	db, err := Open(path, params)
	require.NoError(t, err)
	last := connectChain(t, db, params, 2000)
	require.NoError(t, db.Close())

	reopened, err := Open(path, params)
	require.NoError(t, err)
	require.Equal(t, int32(2000), reopened.Tip().Height)
	require.Equal(t, last.Hash, reopened.Tip().Hash)
}

// TestHeadersDBReloadHandlesAuxPowVersionBit covers the real-chain case
// where a connected header's version carries block.VersionAuxPowBit: the
// on-disk record still stores only the 80-byte plain header (spec.md
// §4.8), so reload must not try to parse a trailing AuxPow section that
// was never persisted.
func TestHeadersDBReloadHandlesAuxPowVersionBit(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	path := filepath.Join(t.TempDir(), "headers.dat")

	db, err := Open(path, params)
	require.NoError(t, err)

	h := &block.Header{
		Version:   1 | block.VersionAuxPowBit,
		PrevBlock: *params.GenesisHash,
		Timestamp: 1700000000,
		Bits:      0x1e0ffff0,
	}
	node, err := db.Connect(h)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := Open(path, params)
	require.NoError(t, err)
	require.Equal(t, int32(1), reopened.Tip().Height)
	require.Equal(t, node.Hash, reopened.Tip().Hash)
}

func TestConnectRejectsUnknownParent(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	db := New(params)

	h := &block.Header{Version: 1, Bits: 0x1e0ffff0}
	h.PrevBlock[0] = 0xff // does not match genesis or any known node
	_, err := db.Connect(h)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindHeaderLinkageFailure, kerr.Kind)
}

func TestFileFormatRejectsGenesisMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.dat")
	db, err := Open(path, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path, &chaincfg.TestNetParams)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindFileFormatInvalid, kerr.Kind)
}

func TestBuildLocatorIncludesTipAndBottom(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	db := New(params)
	last := connectChain(t, db, params, 50)

	locator := db.BuildLocator()
	require.NotEmpty(t, locator)
	require.Equal(t, last.Hash, locator[0])
	require.Equal(t, *params.GenesisHash, locator[len(locator)-1])
}
