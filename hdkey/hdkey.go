// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkey implements BIP32 hierarchical-deterministic key derivation,
// grounded on original_source/src/bip32.c and, for the Go idiom, on the
// ecckd/hdkeychain-style extended-key packages seen across the retrieval
// pack (ModChain-secp256k1's ecckd, ndau's bip32, decred's hdkeychain).
package hdkey

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/crypto"
)

// Kind enumerates the hdkey-specific error kinds from spec.md §7.
type Kind string

const (
	KindInvalidSeed      Kind = "InvalidSeed"
	KindWeakChild        Kind = "WeakChild"
	KindHardenedFromPub  Kind = "HardenedFromPublic"
	KindPathSyntax       Kind = "PathSyntax"
	KindVersionMismatch  Kind = "VersionMismatch"
	KindSerializedLength Kind = "SerializedLength"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// HardenedKeyStart is the first index (2^31) that denotes hardened
// derivation, per BIP32.
const HardenedKeyStart uint32 = 0x80000000

// DefaultSeedKey is the HMAC key used for master-key generation on
// Dogecoin, per spec.md §4.2 — deliberately distinct from standard BIP32's
// "Bitcoin seed".
const DefaultSeedKey = "Dogecoin seed"

const (
	serializedKeyLen = 78
	pubKeyLen        = 33
)

// Node is an extended HD key: either a private node (has both Priv and the
// derived Pub) or a public-only node (Priv is nil). Immutable once
// constructed; derivation produces a new Node.
type Node struct {
	Depth       byte
	ParentFP    uint32
	ChildNum    uint32
	ChainCode   [32]byte
	Priv        []byte // 32 bytes, nil for public-only nodes
	PubCompress [33]byte
}

// IsPrivate reports whether the node carries a private key.
func (n *Node) IsPrivate() bool { return n.Priv != nil }

// NewMaster derives the master node from seed using the given HMAC key
// (spec.md §4.2 "Master from seed"). Pass []byte(DefaultSeedKey) for the
// Dogecoin default, or a chain-specific key for variants.
func NewMaster(seed, hmacKey []byte) (*Node, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, &Error{KindInvalidSeed, "seed must be 16..64 bytes"}
	}
	i := crypto.HMACSHA512(hmacKey, seed)
	il, ir := i[:32], i[32:]

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(il); overflow || scalar.IsZero() {
		return nil, &Error{KindInvalidSeed, "derived master key is invalid, require new entropy"}
	}

	n := &Node{Depth: 0, ParentFP: 0, ChildNum: 0, Priv: append([]byte(nil), il...)}
	copy(n.ChainCode[:], ir)
	if err := n.fillPub(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) fillPub() error {
	_, pub := btcec.PrivKeyFromBytes(n.Priv)
	copy(n.PubCompress[:], pub.SerializeCompressed())
	return nil
}

// IsHardened reports whether index i denotes a hardened child.
func IsHardened(i uint32) bool { return i >= HardenedKeyStart }

// Derive computes the child at index i (spec.md §4.2 CKDpriv/CKDpub).
// Returns KindWeakChild if the derivation must be retried with i+1, and
// KindHardenedFromPub if i is hardened but n has no private key.
func (n *Node) Derive(i uint32) (*Node, error) {
	if IsHardened(i) && !n.IsPrivate() {
		return nil, &Error{KindHardenedFromPub, "cannot derive a hardened child from a public-only node"}
	}

	var data []byte
	if IsHardened(i) {
		data = make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, n.Priv...)
	} else {
		data = make([]byte, 0, 33+4)
		data = append(data, n.PubCompress[:]...)
	}
	var idxBuf [4]byte
	binary.BigEndian.PutUint32(idxBuf[:], i)
	data = append(data, idxBuf[:]...)

	iHMAC := crypto.HMACSHA512(n.ChainCode[:], data)
	il, ir := iHMAC[:32], iHMAC[32:]

	var ilScalar secp256k1.ModNScalar
	if overflow := ilScalar.SetByteSlice(il); overflow {
		return nil, &Error{KindWeakChild, "I_L out of range, retry with i+1"}
	}

	child := &Node{
		Depth:    n.Depth + 1,
		ParentFP: fingerprint(n.PubCompress[:]),
		ChildNum: i,
	}
	copy(child.ChainCode[:], ir)

	if n.IsPrivate() {
		var parentScalar secp256k1.ModNScalar
		parentScalar.SetByteSlice(n.Priv)
		var childScalar secp256k1.ModNScalar
		childScalar.Add2(&ilScalar, &parentScalar)
		if childScalar.IsZero() {
			return nil, &Error{KindWeakChild, "derived private key is zero, retry with i+1"}
		}
		privBytes := childScalar.Bytes()
		child.Priv = append([]byte(nil), privBytes[:]...)
		if err := child.fillPub(); err != nil {
			return nil, err
		}
		return child, nil
	}

	// CKDpub: child_pub = parent_pub + I_L*G.
	var ilPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&ilScalar, &ilPoint)

	parentPub, err := secp256k1.ParsePubKey(n.PubCompress[:])
	if err != nil {
		return nil, &Error{KindVersionMismatch, "invalid parent public key"}
	}
	var parentPoint secp256k1.JacobianPoint
	parentPub.AsJacobian(&parentPoint)

	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(&ilPoint, &parentPoint, &sum)
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, &Error{KindWeakChild, "derived public point is the point at infinity, retry with i+1"}
	}
	sum.ToAffine()
	childPub := secp256k1.NewPublicKey(&sum.X, &sum.Y)
	copy(child.PubCompress[:], childPub.SerializeCompressed())
	return child, nil
}

func fingerprint(pubCompressed []byte) uint32 {
	h := crypto.Hash160(pubCompressed)
	return binary.BigEndian.Uint32(h[:4])
}

// StripPrivate returns a new Node with the private key zeroed, retaining
// only the public half (spec.md §4.2 strip_private).
func (n *Node) StripPrivate() *Node {
	clone := *n
	clone.Priv = nil
	return &clone
}

// Hash160 returns HASH160 of the node's compressed public key.
func (n *Node) Hash160() []byte {
	return crypto.Hash160(n.PubCompress[:])
}

// Address returns the P2PKH base58check address for this node on the
// given chain (spec.md §6 "Address forms emitted").
func (n *Node) Address(params *chaincfg.Params) string {
	return crypto.Base58CheckEncode(params.PubKeyHashAddrID, n.Hash160())
}

// Serialize encodes the node as the 78-byte BIP32 layout (spec.md §4.2
// "Serialization"), base58check-encoded. private selects which
// 4-byte version prefix is used: pass true to serialize the private form
// (requires n.IsPrivate()), false for the public form.
func (n *Node) Serialize(params *chaincfg.Params, private bool) (string, error) {
	if private && !n.IsPrivate() {
		return "", &Error{KindVersionMismatch, "node has no private key to serialize"}
	}
	buf := make([]byte, 0, serializedKeyLen)
	if private {
		v := params.HDPrivateKeyVersion()
		buf = append(buf, v[:]...)
	} else {
		v := params.HDPublicKeyVersion()
		buf = append(buf, v[:]...)
	}
	buf = append(buf, n.Depth)
	var parentFP, childNum [4]byte
	binary.BigEndian.PutUint32(parentFP[:], n.ParentFP)
	binary.BigEndian.PutUint32(childNum[:], n.ChildNum)
	buf = append(buf, parentFP[:]...)
	buf = append(buf, childNum[:]...)
	buf = append(buf, n.ChainCode[:]...)
	if private {
		buf = append(buf, 0x00)
		buf = append(buf, n.Priv...)
	} else {
		buf = append(buf, n.PubCompress[:]...)
	}
	if len(buf) != serializedKeyLen {
		return "", &Error{KindSerializedLength, fmt.Sprintf("serialized key is %d bytes, want %d", len(buf), serializedKeyLen)}
	}
	return base58checkRaw(buf), nil
}

// base58checkRaw mirrors btcutil/base58's CheckEncode but without a leading
// single-byte version, since the 78-byte BIP32 layout already embeds its
// own 4-byte version prefix inside payload.
func base58checkRaw(payload []byte) string {
	checksum := crypto.Sha256d(payload)
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum[:4]...)
	return base58.Encode(full)
}

// Deserialize parses a base58check-encoded 78-byte extended key, validating
// its version against the chain's expected private/public prefix
// (spec.md §4.2 "Serialization"), returning the parsed Params alongside the
// Node so callers that don't already know the network can recover it.
func Deserialize(s string) (*Node, *chaincfg.Params, bool, error) {
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return nil, nil, false, &Error{KindVersionMismatch, "invalid base58check encoding"}
	}
	if len(raw) != serializedKeyLen+4 {
		return nil, nil, false, &Error{KindSerializedLength, "decoded extended key has the wrong length"}
	}
	payload := raw[:len(raw)-4]
	checksum := raw[len(raw)-4:]
	want := crypto.Sha256d(payload)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return nil, nil, false, &Error{KindVersionMismatch, "checksum mismatch"}
		}
	}

	var version [4]byte
	copy(version[:], payload[0:4])

	var isPrivate bool
	var params *chaincfg.Params
	if p, ok := chaincfg.ParamsForHDPrivVersion(version); ok {
		params = p
		isPrivate = true
	} else if p, ok := chaincfg.ParamsForHDPubVersion(version); ok {
		params = p
		isPrivate = false
	} else {
		return nil, nil, false, &Error{KindVersionMismatch, "unrecognized extended-key version"}
	}

	n := &Node{
		Depth:    payload[4],
		ParentFP: binary.BigEndian.Uint32(payload[5:9]),
		ChildNum: binary.BigEndian.Uint32(payload[9:13]),
	}
	copy(n.ChainCode[:], payload[13:45])

	keyMaterial := payload[45:78]
	if isPrivate {
		if keyMaterial[0] != 0x00 {
			return nil, nil, false, &Error{KindVersionMismatch, "private extended key missing 0x00 marker byte"}
		}
		n.Priv = append([]byte(nil), keyMaterial[1:]...)
		if err := n.fillPub(); err != nil {
			return nil, nil, false, err
		}
	} else {
		copy(n.PubCompress[:], keyMaterial)
	}
	return n, params, isPrivate, nil
}
