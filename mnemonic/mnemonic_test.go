// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mnemonic

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dogeorg/dogecoin-core/mnemonic/wordlists"
)

// TestAllAbandonVector exercises spec.md's "BIP39 English 'all abandon'
// vector": 128 zero bits of entropy encodes to the "abandon...about"
// phrase, and with passphrase "TREZOR" derives the documented seed.
func TestAllAbandonVector(t *testing.T) {
	entropy := make([]byte, 16)
	phrase, err := NewMnemonic(entropy, wordlists.English)
	require.NoError(t, err)
	require.Equal(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", phrase)

	seed, err := Seed(phrase, "TREZOR")
	require.NoError(t, err)
	want, err := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)
	require.Equal(t, want, seed)
}

func TestDecodeRejectsBadWordCount(t *testing.T) {
	_, err := Decode("abandon abandon abandon", wordlists.English)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindBadWordCount, kerr.Kind)
}

func TestDecodeRejectsUnknownWord(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon zzzznotaword"
	_, err := Decode(phrase, wordlists.English)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindUnknownWord, kerr.Kind)
}

func TestDecodeRejectsChecksumMismatch(t *testing.T) {
	// Swap the last word for one that still parses as a valid wordlist
	// member but flips the checksum.
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon zoo"
	_, err := Decode(phrase, wordlists.English)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindChecksumMismatch, kerr.Kind)
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := NewMnemonic(make([]byte, 16), wordlists.Language("xx"))
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindUnsupportedLanguage, kerr.Kind)
}

func TestPassphraseTooLong(t *testing.T) {
	long := make([]byte, maxPassphraseLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := Seed("abandon about", string(long))
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindPassphraseTooLong, kerr.Kind)
}

// TestEncodeDecodeRoundTripProperty is spec.md §8's "for every mnemonic
// produced by encoding entropy E, mnemonic_check passes and decoding
// recovers E" invariant.
func TestEncodeDecodeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SampledFrom([]int{128, 160, 192, 224, 256}).Draw(t, "bits")
		entropy := rapid.SliceOfN(rapid.Byte(), bits/8, bits/8).Draw(t, "entropy")

		phrase, err := NewMnemonic(entropy, wordlists.English)
		require.NoError(t, err)
		require.True(t, Check(phrase, wordlists.English))

		recovered, err := Decode(phrase, wordlists.English)
		require.NoError(t, err)
		require.Equal(t, entropy, recovered)
	})
}

// TestSeedDeterministic is spec.md §8's "applying mnemonic_to_seed twice
// with the same inputs yields the same 64 bytes" invariant.
func TestSeedDeterministic(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	a, err := Seed(phrase, "")
	require.NoError(t, err)
	b, err := Seed(phrase, "")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}
