// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/transaction"
)

// mergedMiningMagic is the 4-byte tag `FA BE 6D 6D` that precedes the
// embedded aux-chain merkle root in a parent coinbase scriptSig
// (spec.md §4.6 step 2).
var mergedMiningMagic = []byte{0xfa, 0xbe, 0x6d, 0x6d}

// maxMergedMiningHeaderOffset is the latest byte offset within the parent
// coinbase scriptSig at which the merged-mining magic may appear
// (spec.md §4.6 step 2, §8 boundary behaviour "beyond byte 45").
const maxMergedMiningHeaderOffset = 45

// MerkleBranch is a merkle authentication path: the sibling hashes from a
// leaf up to (but not including) the root, plus the leaf's index encoding
// which side of each pair the accumulated hash occupies (bit i of Index
// selects left/right at branch level i).
type MerkleBranch struct {
	Hashes []chainhash.Hash
	Index  uint32
}

// DetermineRoot recomputes the merkle root reachable from leaf by walking
// b's sibling hashes, per the standard Bitcoin-family merkle-branch
// combine rule: SHA256d(leaf||sibling) if the current bit is 0,
// SHA256d(sibling||leaf) if 1.
func (b MerkleBranch) DetermineRoot(leaf chainhash.Hash) chainhash.Hash {
	acc := leaf
	idx := b.Index
	for _, sibling := range b.Hashes {
		var buf [64]byte
		if idx&1 == 0 {
			copy(buf[0:32], acc[:])
			copy(buf[32:64], sibling[:])
		} else {
			copy(buf[0:32], sibling[:])
			copy(buf[32:64], acc[:])
		}
		sum := crypto.Sha256d(buf[:])
		copy(acc[:], sum)
		idx >>= 1
	}
	return acc
}

// AuxPow is the merged-mining proof attached to a block header whose
// version has VersionAuxPowBit set (spec.md §3 "Block header").
type AuxPow struct {
	CoinbaseTx        []byte // serialized parent coinbase transaction
	ParentBlockHash   chainhash.Hash
	CoinbaseBranch    MerkleBranch // proves CoinbaseTx is a leaf of ParentBlock's tx tree; Index must be 0
	ChainMerkleBranch MerkleBranch // proves the aux block's hash is a leaf of the merged-mining chain tree
	ParentBlock       Header       // parent chain's block header
}

func (a *AuxPow) serialize(buf *bytes.Buffer) {
	writeVarInt(buf, uint64(len(a.CoinbaseTx)))
	buf.Write(a.CoinbaseTx)
	buf.Write(a.ParentBlockHash[:])
	serializeMerkleBranch(buf, a.CoinbaseBranch)
	serializeMerkleBranch(buf, a.ChainMerkleBranch)
	var parentPlain [headerSize]byte
	a.ParentBlock.serializePlain(parentPlain[:])
	buf.Write(parentPlain[:])
}

func serializeMerkleBranch(buf *bytes.Buffer, b MerkleBranch) {
	writeVarInt(buf, uint64(len(b.Hashes)))
	for _, h := range b.Hashes {
		buf.Write(h[:])
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], b.Index)
	buf.Write(idx[:])
}

func deserializeMerkleBranch(r *bytes.Reader) (MerkleBranch, error) {
	n, err := readVarInt(r)
	if err != nil {
		return MerkleBranch{}, err
	}
	b := MerkleBranch{Hashes: make([]chainhash.Hash, n)}
	for i := range b.Hashes {
		if _, err := ioReadFull(r, b.Hashes[i][:]); err != nil {
			return MerkleBranch{}, &Error{KindParseShort, "merkle branch hash"}
		}
	}
	var idx [4]byte
	if _, err := ioReadFull(r, idx[:]); err != nil {
		return MerkleBranch{}, &Error{KindParseShort, "merkle branch index"}
	}
	b.Index = binary.LittleEndian.Uint32(idx[:])
	return b, nil
}

func deserializeAuxPow(r *bytes.Reader) (*AuxPow, error) {
	txLen, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	coinbaseTx := make([]byte, txLen)
	if _, err := ioReadFull(r, coinbaseTx); err != nil {
		return nil, &Error{KindParseShort, "coinbase tx"}
	}
	a := &AuxPow{CoinbaseTx: coinbaseTx}
	if _, err := ioReadFull(r, a.ParentBlockHash[:]); err != nil {
		return nil, &Error{KindParseShort, "parent block hash"}
	}
	a.CoinbaseBranch, err = deserializeMerkleBranch(r)
	if err != nil {
		return nil, err
	}
	a.ChainMerkleBranch, err = deserializeMerkleBranch(r)
	if err != nil {
		return nil, err
	}
	var parentPlain [headerSize]byte
	if _, err := ioReadFull(r, parentPlain[:]); err != nil {
		return nil, &Error{KindParseShort, "parent block header"}
	}
	parentHeader, err := DeserializeHeader(parentPlain[:])
	if err != nil {
		return nil, err
	}
	a.ParentBlock = *parentHeader
	return a, nil
}

func ioReadFull(r *bytes.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		b, err := r.ReadByte()
		if err != nil {
			return n, err
		}
		buf[n] = b
		n++
	}
	return n, nil
}

// expectedChainMerkleIndex computes the slot a chain with the given
// merged-mining chain ID must occupy in a depth-h aux chain merkle tree,
// given the parent block's merge-mining nonce (spec.md §4.6 step 3,
// grounded on original_source/src/block.c get_expected_index: the
// standard multiply-add-modulo slot formula).
func expectedChainMerkleIndex(nonce uint32, chainID int32, h int) uint32 {
	rand := nonce
	rand = rand*1103515245 + 12345
	rand += uint32(chainID)
	rand = rand*1103515245 + 12345
	return rand % (uint32(1) << uint(h))
}

// Check verifies a's merged-mining proof against the aux block hash it is
// attached to, per spec.md §4.6. chainID is this chain's configured
// AuxPowChainID; strictChainID mirrors chaincfg.Params.StrictChainID.
func (a *AuxPow) Check(auxBlockHash chainhash.Hash, chainID uint32, strictChainID bool) error {
	if strictChainID {
		parentChainID := uint32(uint32(a.ParentBlock.Version) >> 16)
		if parentChainID == chainID {
			return &Error{KindAuxPowInvalid, "parent chain id must differ from aux chain id under strict_id"}
		}
	}

	if a.CoinbaseBranch.Index != 0 {
		return &Error{KindAuxPowInvalid, "parent coinbase must be the first leaf of its block (index 0)"}
	}

	if a.ParentBlockHash != a.ParentBlock.Hash() {
		return &Error{KindHeaderLinkageFail, "parent block hash does not match the embedded parent header"}
	}

	coinbaseTx, err := transaction.Deserialize(a.CoinbaseTx)
	if err != nil {
		return &Error{KindAuxPowInvalid, "failed to parse parent coinbase transaction"}
	}
	coinbaseTxid := coinbaseTx.Txid()
	var coinbaseHash chainhash.Hash
	copy(coinbaseHash[:], coinbaseTxid[:])

	reconstructedParentRoot := a.CoinbaseBranch.DetermineRoot(coinbaseHash)
	if reconstructedParentRoot != a.ParentBlock.MerkleRoot {
		return &Error{KindAuxPowInvalid, "parent coinbase is not a member of the parent block's merkle tree"}
	}

	depth := len(a.ChainMerkleBranch.Hashes)
	chainRoot := a.ChainMerkleBranch.DetermineRoot(auxBlockHash)

	if len(coinbaseTx.TxIn) == 0 {
		return &Error{KindAuxPowInvalid, "parent coinbase has no inputs"}
	}
	scriptSig := coinbaseTx.TxIn[0].SignatureScript

	headerPos := bytes.Index(scriptSig, mergedMiningMagic)
	var rootPos int
	if headerPos == -1 {
		// Fall back to a bare root match within the leading bytes when
		// the magic itself is absent, per spec.md step 2's offset rule
		// being stated in terms of where the root is found.
		rootPos = bytes.Index(scriptSig, reverseBytes(chainRoot[:]))
		if rootPos == -1 || rootPos > maxMergedMiningHeaderOffset {
			return &Error{KindAuxPowInvalid, "merged mining root not found within offset bound of parent coinbase"}
		}
	} else {
		if headerPos > maxMergedMiningHeaderOffset {
			return &Error{KindAuxPowInvalid, "merged mining header found too late in parent coinbase"}
		}
		rootPos = headerPos + len(mergedMiningMagic)
		if rootPos+32 > len(scriptSig) {
			return &Error{KindAuxPowInvalid, "merged mining header truncates before embedded root"}
		}
		if !bytes.Equal(scriptSig[rootPos:rootPos+32], reverseBytes(chainRoot[:])) {
			return &Error{KindAuxPowInvalid, "embedded merkle root does not match reconstructed chain root"}
		}
	}

	tailStart := rootPos + 32
	if tailStart+8 > len(scriptSig) {
		return &Error{KindAuxPowInvalid, "parent coinbase truncates before merkle size/nonce"}
	}
	nonce := binary.LittleEndian.Uint32(scriptSig[tailStart+4 : tailStart+8])

	wantIndex := expectedChainMerkleIndex(nonce, int32(chainID), depth)
	if wantIndex != a.ChainMerkleBranch.Index {
		return &Error{KindAuxPowInvalid, "chain merkle branch index does not match the expected slot"}
	}

	return nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
