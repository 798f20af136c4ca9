// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/transaction"
)

func chainhashFromByte(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func sampleHeader() *Header {
	return &Header{
		Version:    1,
		Timestamp:  1700000000,
		Bits:       0x1e0ffff0,
		Nonce:      12345,
	}
}

func TestHeaderSerializeDeserializeRoundTrip(t *testing.T) {
	h := sampleHeader()
	raw := h.Serialize()
	require.Len(t, raw, headerSize)

	got, err := DeserializeHeader(raw)
	require.NoError(t, err)
	require.Equal(t, h.Version, got.Version)
	require.Equal(t, h.Timestamp, got.Timestamp)
	require.Equal(t, h.Bits, got.Bits)
	require.Equal(t, h.Nonce, got.Nonce)
	require.Nil(t, got.AuxPow)
}

func TestHeaderHashIsDoubleSHA256OfPlainBytes(t *testing.T) {
	h := sampleHeader()
	hash1 := h.Hash()
	hash2 := h.Hash()
	require.Equal(t, hash1, hash2)
	require.Equal(t, crypto.Sha256d(h.PlainBytes()), hash1[:])
}

// coinbaseWithMergedMiningTag builds a minimal coinbase transaction whose
// first input's scriptSig embeds the merged-mining header at the given
// offset, per spec.md scenario 6 "AuxPoW acceptance".
func coinbaseWithMergedMiningTag(root chainhash.Hash, offset int) *transaction.Tx {
	var tag bytes.Buffer
	tag.Write(mergedMiningMagic)
	reversed := reverseBytes(root[:])
	tag.Write(reversed)
	var sizeNonce [8]byte
	binary.LittleEndian.PutUint32(sizeNonce[0:4], 1) // merkle size = 1 (depth 0)
	binary.LittleEndian.PutUint32(sizeNonce[4:8], 0) // merkle nonce = 0
	tag.Write(sizeNonce[:])

	scriptSig := make([]byte, offset)
	scriptSig = append(scriptSig, tag.Bytes()...)

	return &transaction.Tx{
		Version: 1,
		TxIn: []*transaction.TxIn{{
			PreviousOutPoint: transaction.OutPoint{Index: 0xffffffff},
			SignatureScript:  scriptSig,
			Sequence:         0xffffffff,
		}},
		TxOut: []*transaction.TxOut{{Value: 0, PkScript: []byte{}}},
	}
}

// TestAuxPowAcceptance is spec.md scenario 6: the merged-mining header at
// byte offset 0 of the parent coinbase is accepted; moved to offset 46 it
// is rejected.
func TestAuxPowAcceptance(t *testing.T) {
	auxHash := chainhashFromByte(0x42)

	accept := func(offset int) error {
		coinbase := coinbaseWithMergedMiningTag(auxHash, offset)
		coinbaseRaw := coinbase.Serialize()
		coinbaseTx, err := transaction.Deserialize(coinbaseRaw)
		require.NoError(t, err)
		coinbaseTxid := coinbaseTx.Txid()
		var coinbaseHash chainhash.Hash
		copy(coinbaseHash[:], coinbaseTxid[:])

		parent := sampleHeader()
		parent.MerkleRoot = coinbaseHash // single-leaf tree: root == the only leaf

		a := &AuxPow{
			CoinbaseTx:        coinbaseRaw,
			ParentBlockHash:   parent.Hash(),
			CoinbaseBranch:    MerkleBranch{Index: 0},
			ChainMerkleBranch: MerkleBranch{Index: 0},
			ParentBlock:       *parent,
		}
		return a.Check(auxHash, 0x62, false)
	}

	require.NoError(t, accept(0))
	require.Error(t, accept(46))
}

func TestAuxPowHeaderRoundTrip(t *testing.T) {
	auxHash := chainhashFromByte(0x7)
	coinbase := coinbaseWithMergedMiningTag(auxHash, 0)
	coinbaseRaw := coinbase.Serialize()
	coinbaseTx, err := transaction.Deserialize(coinbaseRaw)
	require.NoError(t, err)
	coinbaseTxid := coinbaseTx.Txid()
	var coinbaseHash chainhash.Hash
	copy(coinbaseHash[:], coinbaseTxid[:])

	parent := sampleHeader()
	parent.MerkleRoot = coinbaseHash

	h := sampleHeader()
	h.Version |= VersionAuxPowBit
	h.AuxPow = &AuxPow{
		CoinbaseTx:        coinbaseRaw,
		CoinbaseBranch:    MerkleBranch{Index: 0},
		ChainMerkleBranch: MerkleBranch{Index: 0},
		ParentBlock:       *parent,
	}

	raw := h.Serialize()
	got, err := DeserializeHeader(raw)
	require.NoError(t, err)
	require.NotNil(t, got.AuxPow)
	require.Equal(t, h.AuxPow.CoinbaseTx, got.AuxPow.CoinbaseTx)
	require.Equal(t, h.AuxPow.ParentBlock.Nonce, got.AuxPow.ParentBlock.Nonce)
}
