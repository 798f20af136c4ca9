// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/crypto"
)

func samplePriv() []byte {
	priv, err := crypto.GeneratePrivateKey(func(b []byte) error {
		for i := range b {
			b[i] = byte(i + 7)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return priv
}

func TestP2PKHEncodeParseRoundTrip(t *testing.T) {
	priv := samplePriv()
	pub, err := crypto.DerivePublicKey(priv)
	require.NoError(t, err)

	addr, err := FromPublicKey(pub, &chaincfg.MainNetParams)
	require.NoError(t, err)

	s := addr.String()
	require.NotEmpty(t, s)

	got, err := Parse(s, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, TypeP2PKH, got.Type)
	require.Equal(t, addr.Hash, got.Hash)
}

func TestP2SHEncodeParseRoundTrip(t *testing.T) {
	hash160 := make([]byte, 20)
	for i := range hash160 {
		hash160[i] = byte(i)
	}
	addr, err := NewP2SH(hash160, &chaincfg.MainNetParams)
	require.NoError(t, err)

	got, err := Parse(addr.String(), &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, TypeP2SH, got.Type)
	require.Equal(t, addr.Hash, got.Hash)
}

func TestP2WPKHEncodeParseRoundTrip(t *testing.T) {
	hash160 := make([]byte, 20)
	for i := range hash160 {
		hash160[i] = byte(20 - i)
	}
	addr, err := NewP2WPKH(hash160, &chaincfg.MainNetParams)
	require.NoError(t, err)

	got, err := Parse(addr.String(), &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, TypeP2WPKH, got.Type)
	require.Equal(t, addr.Hash, got.Hash)
}

func TestParseRejectsWrongNetworkVersionByte(t *testing.T) {
	addr, err := NewP2PKH(make([]byte, 20), &chaincfg.MainNetParams)
	require.NoError(t, err)
	s := addr.String()

	_, err = Parse(s, &chaincfg.TestNetParams)
	require.Error(t, err)
}
