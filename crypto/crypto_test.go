// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func fixedPrivateKey(t *testing.T) []byte {
	t.Helper()
	priv := make([]byte, PrivateKeySize)
	priv[31] = 1
	require.True(t, isValidPrivateKeyScalar(priv))
	return priv
}

func TestSignHashVerifyRoundTrip(t *testing.T) {
	priv := fixedPrivateKey(t)
	pub, err := DerivePublicKey(priv)
	require.NoError(t, err)

	hash := Sha256d([]byte("message"))
	compact, err := SignHash(priv, hash)
	require.NoError(t, err)
	require.Len(t, compact, 64)

	der, err := CompactToDER(compact)
	require.NoError(t, err)
	require.True(t, VerifySignatureDER(pub, hash, der))
}

// TestCompactToDERNormalizesHighS feeds in a high-S compact signature (the
// negation of a valid low-S one) and checks CompactToDER still produces a
// low-S DER encoding, rather than assuming its input is already low-S.
func TestCompactToDERNormalizesHighS(t *testing.T) {
	priv := fixedPrivateKey(t)
	pub, err := DerivePublicKey(priv)
	require.NoError(t, err)
	hash := Sha256d([]byte("message"))

	compact, err := SignHash(priv, hash)
	require.NoError(t, err)

	var s secp256k1.ModNScalar
	s.SetByteSlice(compact[32:])
	require.False(t, s.IsOverHalfOrder(), "SignHash must already produce a low-S compact signature")
	s.Negate()
	highS := make([]byte, 64)
	copy(highS[:32], compact[:32])
	sBytes := s.Bytes()
	copy(highS[32:], sBytes[:])

	der, err := CompactToDER(highS)
	require.NoError(t, err)
	require.True(t, VerifySignatureDER(pub, hash, der))

	lowDER, err := CompactToDER(compact)
	require.NoError(t, err)
	require.Equal(t, lowDER, der)
}

func TestHash160AndSha256d(t *testing.T) {
	h160 := Hash160([]byte("hello"))
	require.Len(t, h160, 20)

	d := Sha256d([]byte("hello"))
	require.Len(t, d, 32)
}

func TestBase58CheckEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	s := Base58CheckEncode(0x1e, payload)
	decoded, version, err := Base58CheckDecode(s)
	require.NoError(t, err)
	require.Equal(t, byte(0x1e), version)
	require.Equal(t, payload, decoded)
}
