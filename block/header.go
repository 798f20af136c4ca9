// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block implements Dogecoin block-header (de)serialization and
// AuxPoW merged-mining verification, grounded on
// original_source/src/block.c and, for the Go idiom, on
// other_examples/.../wire-auxpow.go's AuxPowHeader.Check.
package block

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/dogeorg/dogecoin-core/crypto"
)

// Kind enumerates the block-package error kinds from spec.md §7.
type Kind string

const (
	KindParseShort        Kind = "ParseShort"
	KindAuxPowInvalid     Kind = "AuxPowInvalid"
	KindHeaderLinkageFail Kind = "HeaderLinkageFailure"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// VersionAuxPowBit is the version bit that signals a trailing AuxPoW
// section follows the 80-byte header (spec.md §3 "Block header").
const VersionAuxPowBit int32 = 0x100

// headerSize is the plain 80-byte little-endian layout.
const headerSize = 80

// Header is a Dogecoin block header. AuxPow is nil unless
// Version&VersionAuxPowBit is set.
type Header struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
	AuxPow     *AuxPow
}

// HasAuxPow reports whether h's version declares a trailing AuxPoW
// section.
func (h *Header) HasAuxPow() bool {
	return h.Version&VersionAuxPowBit != 0
}

// Hash computes double-SHA256 of the 80-byte serialization (spec.md §3
// "hash = double-SHA256 of the 80-byte little-endian serialization").
// AuxPoW data, when present, is not part of the hashed bytes.
func (h *Header) Hash() chainhash.Hash {
	var buf [headerSize]byte
	h.serializePlain(buf[:])
	sum := crypto.Sha256d(buf[:])
	var out chainhash.Hash
	copy(out[:], sum)
	return out
}

// PlainBytes returns the 80-byte header encoding, omitting any AuxPow
// tail, for callers (e.g. headersdb) that only ever store the fixed-size
// header record.
func (h *Header) PlainBytes() []byte {
	var buf [headerSize]byte
	h.serializePlain(buf[:])
	return buf[:]
}

func (h *Header) serializePlain(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
}

// Serialize encodes the plain 80-byte header followed by the AuxPow tail
// when present.
func (h *Header) Serialize() []byte {
	var buf bytes.Buffer
	var plain [headerSize]byte
	h.serializePlain(plain[:])
	buf.Write(plain[:])
	if h.HasAuxPow() && h.AuxPow != nil {
		h.AuxPow.serialize(&buf)
	}
	return buf.Bytes()
}

// DeserializeHeader parses a block header, reading the trailing AuxPoW
// section when the version bit is set (spec.md §3 "Block header").
func DeserializeHeader(raw []byte) (*Header, error) {
	return ReadHeader(bytes.NewReader(raw))
}

// ParsePlainHeader parses exactly the 80-byte plain header encoding
// produced by PlainBytes, ignoring the AuxPow version bit. The on-disk
// headers DB record is defined as exactly 80 bytes (spec.md §4.8, §6),
// so a reload must not try to read an AuxPoW tail that was never stored.
func ParsePlainHeader(raw []byte) (*Header, error) {
	if len(raw) != headerSize {
		return nil, &Error{KindParseShort, "plain header must be 80 bytes"}
	}
	return parsePlainHeader(raw), nil
}

// ReadHeader parses one header (plain 80 bytes, plus its AuxPoW section
// when the version bit is set) from r, consuming exactly the bytes that
// belong to it. This lets callers that parse a stream of concatenated
// headers — e.g. a HEADERS wire message, where each header's length
// varies with whether it carries AuxPoW — read one header at a time
// without knowing its length in advance.
func ReadHeader(r *bytes.Reader) (*Header, error) {
	var plain [headerSize]byte
	if _, err := io.ReadFull(r, plain[:]); err != nil {
		return nil, &Error{KindParseShort, "header shorter than 80 bytes"}
	}
	h := parsePlainHeader(plain[:])

	if h.HasAuxPow() {
		auxPow, err := deserializeAuxPow(r)
		if err != nil {
			return nil, err
		}
		h.AuxPow = auxPow
	}
	return h, nil
}

func parsePlainHeader(raw []byte) *Header {
	h := &Header{
		Version:   int32(binary.LittleEndian.Uint32(raw[0:4])),
		Timestamp: binary.LittleEndian.Uint32(raw[68:72]),
		Bits:      binary.LittleEndian.Uint32(raw[72:76]),
		Nonce:     binary.LittleEndian.Uint32(raw[76:80]),
	}
	copy(h.PrevBlock[:], raw[4:36])
	copy(h.MerkleRoot[:], raw[36:68])
	return h
}

func readVarInt(r *bytes.Reader) (uint64, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, &Error{KindParseShort, "varint"}
	}
	switch first {
	case 0xfd:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, &Error{KindParseShort, "varint u16"}
		}
		return uint64(binary.LittleEndian.Uint16(b[:])), nil
	case 0xfe:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, &Error{KindParseShort, "varint u32"}
		}
		return uint64(binary.LittleEndian.Uint32(b[:])), nil
	case 0xff:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, &Error{KindParseShort, "varint u64"}
		}
		return binary.LittleEndian.Uint64(b[:]), nil
	default:
		return uint64(first), nil
	}
}

func writeVarInt(buf *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], n)
		buf.Write(b[:])
	}
}
