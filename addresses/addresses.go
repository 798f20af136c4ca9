// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addresses implements the three address forms spec.md §4.4
// defines on top of the HD key tree and script classifier: P2PKH, P2SH,
// and P2WPKH.
package addresses

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/crypto"
)

// AddressType enumerates the address forms this package emits.
type AddressType string

const (
	TypeP2PKH  AddressType = "p2pkh"
	TypeP2SH   AddressType = "p2sh"
	TypeP2WPKH AddressType = "p2wpkh"
)

// Error is returned when an address string fails to parse or its
// checksum/version byte does not match the expected network.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "addresses: " + e.Msg }

// Address is a parsed or constructed Dogecoin-family address.
type Address struct {
	Type   AddressType
	Hash   [20]byte // HASH160(pubkey) for P2PKH/P2WPKH, HASH160(script) for P2SH
	Params *chaincfg.Params
}

// NewP2PKH builds a P2PKH address from a 20-byte HASH160(pubkey)
// (spec.md §4.4 "P2PKH: base58check(prefix_byte || HASH160(pubkey))").
func NewP2PKH(hash160 []byte, params *chaincfg.Params) (*Address, error) {
	if len(hash160) != 20 {
		return nil, &Error{"hash160 must be 20 bytes"}
	}
	a := &Address{Type: TypeP2PKH, Params: params}
	copy(a.Hash[:], hash160)
	return a, nil
}

// NewP2SH builds a P2SH address from a 20-byte HASH160(script)
// (spec.md §4.4 "P2SH: base58check(script_prefix || HASH160(script))").
func NewP2SH(hash160 []byte, params *chaincfg.Params) (*Address, error) {
	if len(hash160) != 20 {
		return nil, &Error{"hash160 must be 20 bytes"}
	}
	a := &Address{Type: TypeP2SH, Params: params}
	copy(a.Hash[:], hash160)
	return a, nil
}

// NewP2WPKH builds a P2WPKH address from a 20-byte HASH160(pubkey)
// (spec.md §4.4 "P2WPKH: bech32 with the chain's HRP, witness version 0,
// 20-byte program").
func NewP2WPKH(hash160 []byte, params *chaincfg.Params) (*Address, error) {
	if len(hash160) != 20 {
		return nil, &Error{"hash160 must be 20 bytes"}
	}
	a := &Address{Type: TypeP2WPKH, Params: params}
	copy(a.Hash[:], hash160)
	return a, nil
}

// FromPublicKey derives the P2PKH address for a compressed public key.
func FromPublicKey(pub []byte, params *chaincfg.Params) (*Address, error) {
	return NewP2PKH(crypto.Hash160(pub), params)
}

// String encodes the address in its canonical textual form: base58check
// for P2PKH/P2SH, bech32 for P2WPKH.
func (a *Address) String() string {
	switch a.Type {
	case TypeP2PKH:
		return crypto.Base58CheckEncode(a.Params.PubKeyHashAddrID, a.Hash[:])
	case TypeP2SH:
		return crypto.Base58CheckEncode(a.Params.ScriptHashAddrID, a.Hash[:])
	case TypeP2WPKH:
		conv, err := bech32.ConvertBits(a.Hash[:], 8, 5, true)
		if err != nil {
			return ""
		}
		data := append([]byte{0}, conv...) // witness version 0
		encoded, err := bech32.Encode(a.Params.Bech32HRPSegwit, data)
		if err != nil {
			return ""
		}
		return encoded
	default:
		return ""
	}
}

// Parse decodes an address string against params, trying base58check
// (P2PKH/P2SH) then bech32 (P2WPKH).
func Parse(s string, params *chaincfg.Params) (*Address, error) {
	if hrp, data, err := bech32.Decode(s); err == nil && hrp == params.Bech32HRPSegwit {
		return parseBech32(data, params)
	}

	payload, version, err := crypto.Base58CheckDecode(s)
	if err != nil {
		return nil, &Error{"base58check decode failed"}
	}
	if len(payload) != 20 {
		return nil, &Error{"decoded payload must be 20 bytes"}
	}

	switch version {
	case params.PubKeyHashAddrID:
		return NewP2PKH(payload, params)
	case params.ScriptHashAddrID:
		return NewP2SH(payload, params)
	default:
		return nil, &Error{fmt.Sprintf("unrecognized version byte 0x%02x", version)}
	}
}

func parseBech32(data []byte, params *chaincfg.Params) (*Address, error) {
	if len(data) < 1 {
		return nil, &Error{"empty bech32 payload"}
	}
	witnessVersion := data[0]
	if witnessVersion != 0 {
		return nil, &Error{"only witness version 0 is recognized"}
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, &Error{"bech32 program conversion failed"}
	}
	if len(program) != 20 {
		return nil, &Error{"witness v0 program must be 20 bytes for P2WPKH"}
	}
	return NewP2WPKH(program, params)
}
