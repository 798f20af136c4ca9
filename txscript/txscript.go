// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txscript classifies and builds scriptPubKeys and encodes
// push-data, grounded on original_source/src/script.c. Opcode values are
// reused directly from github.com/btcsuite/btcd/txscript rather than
// redefining the opcode table, per spec.md §4.4.
package txscript

import (
	"bytes"

	"github.com/btcsuite/btcd/txscript"
)

// Kind enumerates the txscript-specific error kinds from spec.md §7.
type Kind string

const (
	KindParseShort    Kind = "ParseShort"
	KindInvalidOpcode Kind = "InvalidOpcode"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// Class identifies a recognized scriptPubKey template (spec.md §4.4
// "Classify").
type Class int

const (
	NonStandardTy Class = iota
	PubKeyHashTy
	ScriptHashTy
	PubKeyTy
	MultiSigTy
	WitnessV0PubKeyHashTy
	WitnessV0ScriptHashTy
)

func (c Class) String() string {
	switch c {
	case PubKeyHashTy:
		return "pubkeyhash"
	case ScriptHashTy:
		return "scripthash"
	case PubKeyTy:
		return "pubkey"
	case MultiSigTy:
		return "multisig"
	case WitnessV0PubKeyHashTy:
		return "witness_v0_keyhash"
	case WitnessV0ScriptHashTy:
		return "witness_v0_scripthash"
	default:
		return "nonstandard"
	}
}

// ClassifyResult carries the classification plus any embedded data the
// template exposes (hash, pubkeys, and the M/N threshold for multisig).
type ClassifyResult struct {
	Class     Class
	Hash      []byte   // P2PKH / P2SH / P2WPKH / P2WSH embedded hash
	PubKeys   [][]byte // P2PK (len 1) or multisig (len N)
	RequiredM int      // multisig M
}

// Classify inspects a scriptPubKey and reports its template, per spec.md
// §4.4 "Classify".
func Classify(script []byte) ClassifyResult {
	if isP2PKH(script) {
		return ClassifyResult{Class: PubKeyHashTy, Hash: append([]byte(nil), script[3:23]...)}
	}
	if isP2SH(script) {
		return ClassifyResult{Class: ScriptHashTy, Hash: append([]byte(nil), script[2:22]...)}
	}
	if pub, ok := isP2PK(script); ok {
		return ClassifyResult{Class: PubKeyTy, PubKeys: [][]byte{pub}}
	}
	if pubs, m, ok := isMultisig(script); ok {
		return ClassifyResult{Class: MultiSigTy, PubKeys: pubs, RequiredM: m}
	}
	if isP2WPKH(script) {
		return ClassifyResult{Class: WitnessV0PubKeyHashTy, Hash: append([]byte(nil), script[2:22]...)}
	}
	if isP2WSH(script) {
		return ClassifyResult{Class: WitnessV0ScriptHashTy, Hash: append([]byte(nil), script[2:34]...)}
	}
	return ClassifyResult{Class: NonStandardTy}
}

func isP2PKH(s []byte) bool {
	return len(s) == 25 &&
		s[0] == txscript.OP_DUP &&
		s[1] == txscript.OP_HASH160 &&
		s[2] == 20 &&
		s[23] == txscript.OP_EQUALVERIFY &&
		s[24] == txscript.OP_CHECKSIG
}

func isP2SH(s []byte) bool {
	return len(s) == 23 &&
		s[0] == txscript.OP_HASH160 &&
		s[1] == 20 &&
		s[22] == txscript.OP_EQUAL
}

func isP2PK(s []byte) ([]byte, bool) {
	if len(s) == 35 && s[0] == 33 && s[34] == txscript.OP_CHECKSIG {
		return append([]byte(nil), s[1:34]...), true
	}
	if len(s) == 67 && s[0] == 65 && s[66] == txscript.OP_CHECKSIG {
		return append([]byte(nil), s[1:66]...), true
	}
	return nil, false
}

func isP2WPKH(s []byte) bool {
	return len(s) == 22 && s[0] == txscript.OP_0 && s[1] == 20
}

func isP2WSH(s []byte) bool {
	return len(s) == 34 && s[0] == txscript.OP_0 && s[1] == 32
}

// isMultisig recognizes `OP_N <pub>...<pub> OP_M OP_CHECKMULTISIG` with
// 1 <= N <= M <= 16 (spec.md §4.4).
func isMultisig(s []byte) ([][]byte, int, bool) {
	if len(s) < 3 {
		return nil, 0, false
	}
	if s[len(s)-1] != txscript.OP_CHECKMULTISIG {
		return nil, 0, false
	}
	n, ok := opToSmallInt(s[0])
	if !ok || n < 1 || n > 16 {
		return nil, 0, false
	}
	pos := 1
	var pubs [][]byte
	for pos < len(s)-2 {
		if pos >= len(s) {
			return nil, 0, false
		}
		l := int(s[pos])
		if l != 33 && l != 65 {
			break
		}
		if pos+1+l > len(s) {
			return nil, 0, false
		}
		pubs = append(pubs, append([]byte(nil), s[pos+1:pos+1+l]...))
		pos += 1 + l
	}
	if pos != len(s)-2 {
		return nil, 0, false
	}
	m, ok := opToSmallInt(s[pos])
	if !ok || m < n || m > 16 {
		return nil, 0, false
	}
	if len(pubs) != m {
		return nil, 0, false
	}
	return pubs, n, true
}

func opToSmallInt(op byte) (int, bool) {
	if op == txscript.OP_0 {
		return 0, true
	}
	if op >= txscript.OP_1 && op <= txscript.OP_16 {
		return int(op-txscript.OP_1) + 1, true
	}
	return 0, false
}

// BuildP2PKH builds `OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG`
// from a 20-byte HASH160 (spec.md §4.4 "Build").
func BuildP2PKH(hash160 []byte) ([]byte, error) {
	if len(hash160) != 20 {
		return nil, &Error{KindInvalidOpcode, "hash160 must be 20 bytes"}
	}
	var buf bytes.Buffer
	buf.WriteByte(txscript.OP_DUP)
	buf.WriteByte(txscript.OP_HASH160)
	writePushData(&buf, hash160)
	buf.WriteByte(txscript.OP_EQUALVERIFY)
	buf.WriteByte(txscript.OP_CHECKSIG)
	return buf.Bytes(), nil
}

// BuildP2SH builds `OP_HASH160 <hash> OP_EQUAL` from a 20-byte script hash.
func BuildP2SH(hash160 []byte) ([]byte, error) {
	if len(hash160) != 20 {
		return nil, &Error{KindInvalidOpcode, "hash160 must be 20 bytes"}
	}
	var buf bytes.Buffer
	buf.WriteByte(txscript.OP_HASH160)
	writePushData(&buf, hash160)
	buf.WriteByte(txscript.OP_EQUAL)
	return buf.Bytes(), nil
}

// BuildMultisig builds `OP_M <pub>... OP_N OP_CHECKMULTISIG` from an
// ordered public-key list, requiring m of len(pubs) signatures.
func BuildMultisig(m int, pubs [][]byte) ([]byte, error) {
	n := len(pubs)
	if m < 1 || n > 16 || m > n {
		return nil, &Error{KindInvalidOpcode, "multisig requires 1 <= m <= n <= 16"}
	}
	var buf bytes.Buffer
	buf.WriteByte(smallIntOp(m))
	for _, p := range pubs {
		if len(p) != 33 && len(p) != 65 {
			return nil, &Error{KindInvalidOpcode, "public key must be 33 or 65 bytes"}
		}
		writePushData(&buf, p)
	}
	buf.WriteByte(smallIntOp(n))
	buf.WriteByte(txscript.OP_CHECKMULTISIG)
	return buf.Bytes(), nil
}

func smallIntOp(n int) byte {
	if n == 0 {
		return txscript.OP_0
	}
	return txscript.OP_1 + byte(n-1)
}

// EncodePush encodes data using the shortest push form: OP_0 for empty,
// direct push for 1..75 bytes, OP_PUSHDATA1/2/4 for longer data with a
// 1/2/4-byte little-endian length prefix (spec.md §4.4 "Encode push").
func EncodePush(data []byte) []byte {
	var buf bytes.Buffer
	writePushData(&buf, data)
	return buf.Bytes()
}

func writePushData(buf *bytes.Buffer, data []byte) {
	n := len(data)
	switch {
	case n == 0:
		buf.WriteByte(txscript.OP_0)
	case n <= 75:
		buf.WriteByte(byte(n))
	case n <= 0xff:
		buf.WriteByte(txscript.OP_PUSHDATA1)
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(txscript.OP_PUSHDATA2)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
	default:
		buf.WriteByte(txscript.OP_PUSHDATA4)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
		buf.WriteByte(byte(n >> 16))
		buf.WriteByte(byte(n >> 24))
	}
	buf.Write(data)
}

// RemoveCodeSeparators re-emits script with every OP_CODESEPARATOR
// removed, preserving push-data bodies exactly (spec.md §4.4 "Copy
// without OP_CODESEPARATOR"), used to build the SIGHASH subscript.
func RemoveCodeSeparators(script []byte) ([]byte, error) {
	var out bytes.Buffer
	i := 0
	for i < len(script) {
		op := script[i]
		switch {
		case op == txscript.OP_CODESEPARATOR:
			i++
		case op >= 1 && op <= 75:
			end := i + 1 + int(op)
			if end > len(script) {
				return nil, &Error{KindParseShort, "push data runs past end of script"}
			}
			out.Write(script[i:end])
			i = end
		case op == txscript.OP_PUSHDATA1:
			if i+2 > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA1 length byte missing"}
			}
			l := int(script[i+1])
			end := i + 2 + l
			if end > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA1 data runs past end of script"}
			}
			out.Write(script[i:end])
			i = end
		case op == txscript.OP_PUSHDATA2:
			if i+3 > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA2 length bytes missing"}
			}
			l := int(script[i+1]) | int(script[i+2])<<8
			end := i + 3 + l
			if end > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA2 data runs past end of script"}
			}
			out.Write(script[i:end])
			i = end
		case op == txscript.OP_PUSHDATA4:
			if i+5 > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA4 length bytes missing"}
			}
			l := int(script[i+1]) | int(script[i+2])<<8 | int(script[i+3])<<16 | int(script[i+4])<<24
			end := i + 5 + l
			if end > len(script) {
				return nil, &Error{KindParseShort, "OP_PUSHDATA4 data runs past end of script"}
			}
			out.Write(script[i:end])
			i = end
		default:
			out.WriteByte(op)
			i++
		}
	}
	return out.Bytes(), nil
}
