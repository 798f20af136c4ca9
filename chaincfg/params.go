// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the chain parameters consumed by the rest of the
// module: the genesis hash, the base58/bip32 version bytes, the bech32
// human-readable part, and the merged-mining chain ID a given Dogecoin-family
// network uses.
package chaincfg

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint identifies a known-good block used to shortcut header sync
// locator construction (spec.md §4.7 step 2).
type Checkpoint struct {
	Height    int32
	Hash      *chainhash.Hash
	Timestamp time.Time
}

// DNSSeed identifies a DNS seed used for peer discovery.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// Params defines a Dogecoin-family network by the parameters that the
// crypto/HD/script/tx/block/SPV core needs to differentiate one chain from
// another. Unlike a full node's chaincfg.Params, this omits mining/consensus
// fields (difficulty retargeting, subsidy schedule, BIP9 deployments) since
// full block validation is out of scope (spec.md §1 Non-goals).
type Params struct {
	// Name is a human-readable network identifier, e.g. "mainnet".
	Name string

	// Net is the magic 4 bytes that prefix every message on the wire.
	Net uint32

	// DefaultPort is the default P2P port for this network.
	DefaultPort string

	// DNSSeeds seeds initial peer discovery.
	DNSSeeds []DNSSeed

	// GenesisHash is the hash of the first block of the chain.
	GenesisHash *chainhash.Hash

	// PubKeyHashAddrID is the base58 version byte for P2PKH addresses
	// (0x1E on Dogecoin mainnet).
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the base58 version byte for P2SH addresses.
	ScriptHashAddrID byte

	// PrivateKeyID is the base58 version byte for WIF-encoded secrets
	// (0x9E on Dogecoin mainnet).
	PrivateKeyID byte

	// HDPrivateKeyID / HDPublicKeyID are the 4-byte big-endian version
	// prefixes for serialized BIP32 extended private/public keys
	// (0x02FAC398 / 0x02FACAFD on Dogecoin mainnet).
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// Bech32HRPSegwit is the bech32 human-readable part used for native
	// segwit addresses on this chain (parsed/built for awareness only,
	// per spec.md §1's segwit-signing Non-goal).
	Bech32HRPSegwit string

	// AuxPowChainID is this chain's merged-mining chain ID, embedded in
	// the high 16 bits of a block's version when AuxPoW is active.
	AuxPowChainID uint32

	// StrictChainID requires the parent chain's ID to differ from this
	// chain's AuxPowChainID (spec.md §4.6 step 1).
	StrictChainID bool

	// CoinbaseMaturity is the network's consensus coinbase-maturity depth,
	// in confirmations. The wallet package does not read it; it applies its
	// own fixed 100-confirmation rule (spec.md §4.8, COINBASE_MATURITY).
	CoinbaseMaturity uint32

	// Checkpoints, ordered oldest to newest.
	Checkpoints []Checkpoint

	// HDCoinType is the BIP44 coin type used when no explicit derivation
	// path is supplied by the caller.
	HDCoinType uint32
}

// HDPrivateKeyVersion returns the BIP32 extended-private-key version bytes.
func (p *Params) HDPrivateKeyVersion() [4]byte { return p.HDPrivateKeyID }

// HDPublicKeyVersion returns the BIP32 extended-public-key version bytes.
func (p *Params) HDPublicKeyVersion() [4]byte { return p.HDPublicKeyID }

// ErrUnknownHDKeyID is returned when a 4-byte prefix doesn't match any
// registered network's private or public extended-key version.
var ErrUnknownHDKeyID = errors.New("chaincfg: unknown hd extended key version")

var (
	registeredHDPrivToParams = map[[4]byte]*Params{}
	registeredHDPubToParams  = map[[4]byte]*Params{}
)

func register(p *Params) {
	registeredHDPrivToParams[p.HDPrivateKeyID] = p
	registeredHDPubToParams[p.HDPublicKeyID] = p
}

// ParamsForHDPrivVersion looks up the network whose extended-private-key
// version matches the given 4 bytes, used by hdkey.Deserialize to validate
// a decoded extended key's prefix (spec.md §4.2 "Serialization").
func ParamsForHDPrivVersion(version [4]byte) (*Params, bool) {
	p, ok := registeredHDPrivToParams[version]
	return p, ok
}

// ParamsForHDPubVersion is the public-key-version counterpart of
// ParamsForHDPrivVersion.
func ParamsForHDPubVersion(version [4]byte) (*Params, bool) {
	p, ok := registeredHDPubToParams[version]
	return p, ok
}

func mustHash(s string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MainNetParams defines the parameters for the main Dogecoin network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         0xc0c0c0c0,
	DefaultPort: "22556",
	DNSSeeds: []DNSSeed{
		{Host: "seed.multidoge.org", HasFiltering: false},
		{Host: "seed2.multidoge.org", HasFiltering: false},
	},
	GenesisHash:      mustHash("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"),
	PubKeyHashAddrID: 0x1e,
	ScriptHashAddrID: 0x16,
	PrivateKeyID:     0x9e,
	HDPrivateKeyID:   [4]byte{0x02, 0xfa, 0xc3, 0x98},
	HDPublicKeyID:    [4]byte{0x02, 0xfa, 0xca, 0xfd},
	Bech32HRPSegwit:  "doge",
	AuxPowChainID:    0x0062,
	StrictChainID:    true,
	CoinbaseMaturity: 30,
	HDCoinType:       3,
}

// TestNetParams defines the parameters for the Dogecoin test network.
var TestNetParams = Params{
	Name:        "testnet3",
	Net:         0xfcc1b7dc,
	DefaultPort: "44556",
	DNSSeeds: []DNSSeed{
		{Host: "testseed.jrn.me.uk", HasFiltering: false},
	},
	GenesisHash:      mustHash("0bb0a78264637406b6360aad926284d544d7049f45189db5664f3c4d07350559"),
	PubKeyHashAddrID: 0x71,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xf1,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	Bech32HRPSegwit:  "tdge",
	AuxPowChainID:    0x0062,
	StrictChainID:    false,
	CoinbaseMaturity: 30,
	HDCoinType:       1,
}

// RegressionNetParams defines the parameters for the regression test
// network, used by local SPV/headersdb tests that need a tiny, static
// genesis without touching mainnet/testnet DNS seeds.
var RegressionNetParams = Params{
	Name:             "regtest",
	Net:              0xfabfb5da,
	DefaultPort:      "18444",
	GenesisHash:      mustHash("0000000000000000000000000000000000000000000000000000000000000000"),
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	Bech32HRPSegwit:  "dgrt",
	AuxPowChainID:    0x0062,
	StrictChainID:    false,
	CoinbaseMaturity: 1,
	HDCoinType:       1,
}

func init() {
	register(&MainNetParams)
	register(&TestNetParams)
	// RegressionNetParams shares its BIP32 HDPrivateKeyID/HDPublicKeyID
	// with TestNetParams (both reuse Dogecoin's testnet prefixes), so it
	// is deliberately not registered here: registering it would make
	// ParamsForHDPrivVersion/ParamsForHDPubVersion non-deterministic
	// between the two, silently resolving a real testnet extended key to
	// regtest. Callers working with regtest already know the network
	// (local tests construct it explicitly) and don't need auto-detect.
}
