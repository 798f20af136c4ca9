// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dogeorg/dogecoin-core/chaincfg"
)

func mustSeed(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestBIP32Vector1 exercises spec.md's "BIP32 test vector m/0h/1/2h/2/1000000000"
// scenario: derive that path from seed 000102030405060708090a0b0c0d0e0f and
// check the resulting private key matches. BIP32's published vector is
// computed with the standard "Bitcoin seed" HMAC key, not DefaultSeedKey.
func TestBIP32Vector1(t *testing.T) {
	seed := mustSeed("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, []byte("Bitcoin seed"))
	require.NoError(t, err)

	path, err := ParsePath("m/0h/1/2h/2/1000000000")
	require.NoError(t, err)
	require.Equal(t, []uint32{
		HardenedKeyStart + 0,
		1,
		HardenedKeyStart + 2,
		2,
		1000000000,
	}, path)

	node, err := master.DerivePath(path)
	require.NoError(t, err)
	require.Equal(t, "471b76e389e528d6de6d816857e012c5455051cad6660850e58372a6c3e6e7c8",
		hex.EncodeToString(node.Priv))
}

// TestSerializeRoundTripAcrossNetworks checks spec.md's "re-serialized with the
// Dogecoin private prefix" claim: only the 4-byte version differs between
// networks, the trailing 74 bytes of the extended key are identical.
func TestSerializeRoundTripAcrossNetworks(t *testing.T) {
	seed := mustSeed("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, []byte(DefaultSeedKey))
	require.NoError(t, err)

	main, err := master.Serialize(&chaincfg.MainNetParams, true)
	require.NoError(t, err)
	test, err := master.Serialize(&chaincfg.TestNetParams, true)
	require.NoError(t, err)
	require.NotEqual(t, main, test)

	decodedMain, paramsMain, isPrivMain, err := Deserialize(main)
	require.NoError(t, err)
	require.True(t, isPrivMain)
	require.Equal(t, chaincfg.MainNetParams.Name, paramsMain.Name)
	require.Equal(t, master.Priv, decodedMain.Priv)
	require.Equal(t, master.ChainCode, decodedMain.ChainCode)

	decodedTest, paramsTest, _, err := Deserialize(test)
	require.NoError(t, err)
	require.Equal(t, chaincfg.TestNetParams.Name, paramsTest.Name)
	require.Equal(t, master.Priv, decodedTest.Priv)
}

func TestDeriveHardenedFromPublicFails(t *testing.T) {
	seed := mustSeed("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, []byte(DefaultSeedKey))
	require.NoError(t, err)
	pubOnly := master.StripPrivate()

	_, err = pubOnly.Derive(HardenedKeyStart)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindHardenedFromPub, kerr.Kind)
}

func TestCKDpubMatchesCKDprivThenStrip(t *testing.T) {
	seed := mustSeed("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, []byte(DefaultSeedKey))
	require.NoError(t, err)

	privChild, err := master.Derive(0)
	require.NoError(t, err)

	pubParent := master.StripPrivate()
	pubChild, err := pubParent.Derive(0)
	require.NoError(t, err)

	require.Equal(t, privChild.PubCompress, pubChild.PubCompress)
	require.Equal(t, privChild.ChainCode, pubChild.ChainCode)
}

func TestParsePathVariants(t *testing.T) {
	for _, variant := range []string{
		"m/44'/3'/0'/0/0",
		"m/44h/3h/0h/0/0",
		"m/44H/3H/0H/0/0",
		"m/44p/3p/0p/0/0",
		"44'/3'/0'/0/0",
	} {
		path, err := ParsePath(variant)
		require.NoError(t, err, variant)
		require.Equal(t, []uint32{
			HardenedKeyStart + 44,
			HardenedKeyStart + 3,
			HardenedKeyStart + 0,
			0,
			0,
		}, path, variant)
	}
}

func TestParsePathRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "m/", "m//0", "m/abc", "m/0'/"} {
		_, err := ParsePath(bad)
		require.Error(t, err, bad)
	}
}

// TestDeriveRoundTripProperty is the §8-style "for every valid derivation
// path, CKDpriv followed by strip_private equals CKDpub on the stripped
// parent" invariant, checked over random small paths.
func TestDeriveRoundTripProperty(t *testing.T) {
	seed := mustSeed("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, []byte(DefaultSeedKey))
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.Uint32Range(0, HardenedKeyStart-1).Draw(t, "idx")
		privChild, err := master.Derive(idx)
		require.NoError(t, err)
		pubChild, err := master.StripPrivate().Derive(idx)
		require.NoError(t, err)
		require.Equal(t, privChild.PubCompress, pubChild.PubCompress)
	})
}
