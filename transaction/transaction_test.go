// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/txscript"
)

func sampleTx() *Tx {
	return &Tx{
		Version: 1,
		TxIn: []*TxIn{
			{
				PreviousOutPoint: OutPoint{Index: 0},
				SignatureScript:  []byte{0x01, 0x02},
				Sequence:         0xffffffff,
			},
		},
		TxOut: []*TxOut{
			{Value: 5000000000, PkScript: []byte{0x76, 0xa9, 0x14}},
		},
		LockTime: 0,
	}
}

// TestSerializeDeserializeRoundTrip is spec.md §8's "for every valid
// transaction T: deserialize(serialize(T)) equals T bit-for-bit".
func TestSerializeDeserializeRoundTrip(t *testing.T) {
	tx := sampleTx()
	raw := tx.Serialize()
	got, err := Deserialize(raw)
	require.NoError(t, err)
	require.Equal(t, tx.Version, got.Version)
	require.Equal(t, tx.LockTime, got.LockTime)
	require.Equal(t, tx.TxIn[0].SignatureScript, got.TxIn[0].SignatureScript)
	require.Equal(t, tx.TxOut[0].Value, got.TxOut[0].Value)
	require.Equal(t, raw, got.Serialize())
}

func TestSerializeDeserializeWithWitness(t *testing.T) {
	tx := sampleTx()
	tx.TxIn[0].Witness = [][]byte{{0x01}, {0x02, 0x03}}
	raw := tx.Serialize()
	require.Equal(t, byte(0x00), raw[4])
	require.Equal(t, byte(0x01), raw[5])

	got, err := Deserialize(raw)
	require.NoError(t, err)
	require.Equal(t, tx.TxIn[0].Witness, got.TxIn[0].Witness)
}

func TestIsCoinbase(t *testing.T) {
	tx := &Tx{
		TxIn: []*TxIn{{PreviousOutPoint: OutPoint{Hash: [32]byte{}, Index: 0xffffffff}}},
	}
	require.True(t, tx.IsCoinbase())

	tx2 := sampleTx()
	require.False(t, tx2.IsCoinbase())
}

func TestDeserializeShortBuffer(t *testing.T) {
	_, err := Deserialize([]byte{0x01, 0x00, 0x00})
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindParseShort, kerr.Kind)
}

// TestSighashSinglePlaceholder is spec.md §8's boundary behaviour:
// "SIGHASH_SINGLE with index >= vout count: output the 32-byte hash with
// only its lowest byte set (= 1)".
func TestSighashSinglePlaceholder(t *testing.T) {
	tx := sampleTx() // 1 output; add a second input so input index 1 has no matching output
	tx.TxIn = append(tx.TxIn, &TxIn{PreviousOutPoint: OutPoint{Index: 1}, Sequence: 0xffffffff})
	h, err := CalcSighash(tx, 1, tx.TxOut[0].PkScript, SighashSingle)
	require.NoError(t, err)
	want := [32]byte{}
	want[0] = 1
	require.Equal(t, want, h)
}

func TestSighashInputIndexOutOfRange(t *testing.T) {
	tx := sampleTx()
	_, err := CalcSighash(tx, 5, tx.TxOut[0].PkScript, SighashAll)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindInputIndexOutOfRange, kerr.Kind)
}

// TestLegacyP2PKHSign exercises spec.md's "Legacy P2PKH sign" scenario:
// a 1-in/1-out tx spending an output locked to HASH160(pub), sighash=ALL;
// the produced scriptSig has form <sig ending 0x01> <33-byte compressed
// pub>, and re-verifying the signature against the computed sighash
// succeeds.
func TestLegacyP2PKHSign(t *testing.T) {
	priv, err := crypto.GeneratePrivateKey(func(b []byte) error {
		for i := range b {
			b[i] = byte(i + 1)
		}
		return nil
	})
	require.NoError(t, err)
	pub, err := crypto.DerivePublicKey(priv)
	require.NoError(t, err)
	hash160 := crypto.Hash160(pub)

	pkScript, err := txscript.BuildP2PKH(hash160)
	require.NoError(t, err)

	tx := &Tx{
		Version: 1,
		TxIn: []*TxIn{{
			PreviousOutPoint: OutPoint{Index: 0},
			Sequence:         0xffffffff,
		}},
		TxOut: []*TxOut{{Value: 100000000, PkScript: pkScript}},
	}

	result, err := SignInput(tx, 0, pkScript, 100000000, priv, SighashAll)
	require.NoError(t, err)
	require.Equal(t, ResultOK, result)

	scriptSig := tx.TxIn[0].SignatureScript
	require.True(t, len(scriptSig) > 0)

	sigLen := int(scriptSig[0])
	sig := scriptSig[1 : 1+sigLen]
	require.Equal(t, byte(SighashAll), sig[len(sig)-1])

	sighash, err := CalcSighash(tx, 0, pkScript, SighashAll)
	require.NoError(t, err)
	require.True(t, crypto.VerifySignatureDER(pub, sighash[:], sig[:len(sig)-1]))
}

// TestSighashDeterministicProperty checks that computing the sighash for
// the same inputs twice yields the same digest, for SIGHASH_ALL,
// SIGHASH_NONE and SIGHASH_ALL|ANYONECANPAY.
func TestSighashDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tx := sampleTx()
		hashType := rapid.SampledFrom([]uint32{SighashAll, SighashNone, SighashAll | SighashAnyoneCanPay}).Draw(t, "hashType")
		a, err := CalcSighash(tx, 0, tx.TxOut[0].PkScript, hashType)
		require.NoError(t, err)
		b, err := CalcSighash(tx, 0, tx.TxOut[0].PkScript, hashType)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}
