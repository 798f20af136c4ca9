// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction implements the typed transaction model:
// (de)serialization with BIP144 witness support, legacy SIGHASH preimage
// computation, and signing orchestration by script type, grounded on
// original_source/src/tx.c and original_source/include/dogecoin/transaction.h.
package transaction

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/txscript"
)

// Kind enumerates the transaction-package error kinds from spec.md §7.
type Kind string

const (
	KindParseShort          Kind = "ParseShort"
	KindInvalidTxOrScript   Kind = "InvalidTxOrScript"
	KindInputIndexOutOfRange Kind = "InputIndexOutOfRange"
	KindInvalidKey          Kind = "InvalidKey"
	KindNoKeyMatch          Kind = "NoKeyMatch"
	KindUnknownScriptType   Kind = "UnknownScriptType"
	KindSighashFailed       Kind = "SighashFailed"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// Sighash type flags, per spec.md §4.5.
const (
	SighashAll          uint32 = 1
	SighashNone         uint32 = 2
	SighashSingle       uint32 = 3
	SighashAnyoneCanPay uint32 = 0x80
	sighashMask         uint32 = 0x1f
)

// OutPoint identifies a previous transaction output.
type OutPoint struct {
	Hash  [32]byte
	Index uint32
}

// TxIn is a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	Witness          [][]byte
}

// TxOut is a transaction output. Value is in koinu (1 coin = 1e8 koinu).
type TxOut struct {
	Value    int64
	PkScript []byte
}

// Tx is a Dogecoin transaction.
type Tx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// IsCoinbase reports whether tx is a coinbase transaction: exactly one
// input whose prev-txid is all-zero and prev-vout is 0xFFFFFFFF
// (spec.md §3 "Transaction").
func (tx *Tx) IsCoinbase() bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	in := tx.TxIn[0]
	return in.PreviousOutPoint.Hash == [32]byte{} && in.PreviousOutPoint.Index == 0xffffffff
}

// HasWitness reports whether any input carries a non-empty witness stack.
func (tx *Tx) HasWitness() bool {
	for _, in := range tx.TxIn {
		if len(in.Witness) > 0 {
			return true
		}
	}
	return false
}

// Copy performs a deep copy of tx, used by the SIGHASH algorithm which
// mutates a scratch copy (spec.md §4.5 step 1).
func (tx *Tx) Copy() *Tx {
	out := &Tx{Version: tx.Version, LockTime: tx.LockTime}
	out.TxIn = make([]*TxIn, len(tx.TxIn))
	for i, in := range tx.TxIn {
		witness := make([][]byte, len(in.Witness))
		for j, w := range in.Witness {
			witness[j] = append([]byte(nil), w...)
		}
		out.TxIn[i] = &TxIn{
			PreviousOutPoint: in.PreviousOutPoint,
			SignatureScript:  append([]byte(nil), in.SignatureScript...),
			Sequence:         in.Sequence,
			Witness:          witness,
		}
	}
	out.TxOut = make([]*TxOut, len(tx.TxOut))
	for i, o := range tx.TxOut {
		out.TxOut[i] = &TxOut{Value: o.Value, PkScript: append([]byte(nil), o.PkScript...)}
	}
	return out
}

// Txid computes the double-SHA256 of the non-witness serialization
// (spec.md §3 "txid = double-SHA256 of the non-witness serialization").
func (tx *Tx) Txid() [32]byte {
	var buf bytes.Buffer
	tx.serialize(&buf, false)
	h := crypto.Sha256d(buf.Bytes())
	var out [32]byte
	copy(out[:], h)
	return out
}

// Serialize encodes tx, inserting the BIP144 marker/flag and witness data
// when tx carries any non-empty witness stack (spec.md §4.5
// "Serialization").
func (tx *Tx) Serialize() []byte {
	var buf bytes.Buffer
	tx.serialize(&buf, tx.HasWitness())
	return buf.Bytes()
}

// SerializeNoWitness encodes tx using the legacy (non-witness) layout
// regardless of whether witness data is present; this is what Txid hashes.
func (tx *Tx) SerializeNoWitness() []byte {
	var buf bytes.Buffer
	tx.serialize(&buf, false)
	return buf.Bytes()
}

func (tx *Tx) serialize(buf *bytes.Buffer, withWitness bool) {
	var versionBuf [4]byte
	binary.LittleEndian.PutUint32(versionBuf[:], uint32(tx.Version))
	buf.Write(versionBuf[:])

	if withWitness {
		buf.Write([]byte{0x00, 0x01})
	}

	writeVarInt(buf, uint64(len(tx.TxIn)))
	for _, in := range tx.TxIn {
		buf.Write(in.PreviousOutPoint.Hash[:])
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], in.PreviousOutPoint.Index)
		buf.Write(idx[:])
		writeVarStr(buf, in.SignatureScript)
		var seq [4]byte
		binary.LittleEndian.PutUint32(seq[:], in.Sequence)
		buf.Write(seq[:])
	}

	writeVarInt(buf, uint64(len(tx.TxOut)))
	for _, out := range tx.TxOut {
		var val [8]byte
		binary.LittleEndian.PutUint64(val[:], uint64(out.Value))
		buf.Write(val[:])
		writeVarStr(buf, out.PkScript)
	}

	if withWitness {
		for _, in := range tx.TxIn {
			writeVarInt(buf, uint64(len(in.Witness)))
			for _, item := range in.Witness {
				writeVarStr(buf, item)
			}
		}
	}

	var lt [4]byte
	binary.LittleEndian.PutUint32(lt[:], tx.LockTime)
	buf.Write(lt[:])
}

// Deserialize parses a transaction, auto-detecting the BIP144 marker
// (spec.md §4.5 "Deserialization").
func Deserialize(raw []byte) (*Tx, error) {
	r := bytes.NewReader(raw)
	tx, err := deserializeFrom(r)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ReadTx parses one transaction from r, consuming exactly the bytes that
// belong to it. Used when parsing a stream of concatenated transactions —
// e.g. a BLOCK message's transaction list — one at a time.
func ReadTx(r *bytes.Reader) (*Tx, error) {
	return deserializeFrom(r)
}

func deserializeFrom(r *bytes.Reader) (*Tx, error) {
	tx := &Tx{}
	var versionBuf [4]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return nil, &Error{KindParseShort, "version"}
	}
	tx.Version = int32(binary.LittleEndian.Uint32(versionBuf[:]))

	withWitness := false
	peek, err := r.ReadByte()
	if err != nil {
		return nil, &Error{KindParseShort, "vin count"}
	}
	if peek == 0x00 {
		flag, err := r.ReadByte()
		if err != nil {
			return nil, &Error{KindParseShort, "witness flag"}
		}
		if flag != 0x01 {
			return nil, &Error{KindInvalidTxOrScript, "unknown witness flag bits"}
		}
		withWitness = true
	} else {
		if err := r.UnreadByte(); err != nil {
			return nil, &Error{KindParseShort, "vin count"}
		}
	}

	vinCount, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	tx.TxIn = make([]*TxIn, vinCount)
	for i := range tx.TxIn {
		in := &TxIn{}
		if _, err := io.ReadFull(r, in.PreviousOutPoint.Hash[:]); err != nil {
			return nil, &Error{KindParseShort, "prev txid"}
		}
		var idx [4]byte
		if _, err := io.ReadFull(r, idx[:]); err != nil {
			return nil, &Error{KindParseShort, "prev vout"}
		}
		in.PreviousOutPoint.Index = binary.LittleEndian.Uint32(idx[:])
		script, err := readVarStr(r)
		if err != nil {
			return nil, err
		}
		in.SignatureScript = script
		var seq [4]byte
		if _, err := io.ReadFull(r, seq[:]); err != nil {
			return nil, &Error{KindParseShort, "sequence"}
		}
		in.Sequence = binary.LittleEndian.Uint32(seq[:])
		tx.TxIn[i] = in
	}

	voutCount, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	tx.TxOut = make([]*TxOut, voutCount)
	for i := range tx.TxOut {
		out := &TxOut{}
		var val [8]byte
		if _, err := io.ReadFull(r, val[:]); err != nil {
			return nil, &Error{KindParseShort, "value"}
		}
		out.Value = int64(binary.LittleEndian.Uint64(val[:]))
		script, err := readVarStr(r)
		if err != nil {
			return nil, err
		}
		out.PkScript = script
		tx.TxOut[i] = out
	}

	if withWitness {
		for _, in := range tx.TxIn {
			stackLen, err := readVarInt(r)
			if err != nil {
				return nil, err
			}
			in.Witness = make([][]byte, stackLen)
			for j := range in.Witness {
				item, err := readVarStr(r)
				if err != nil {
					return nil, err
				}
				in.Witness[j] = item
			}
		}
	}

	var lt [4]byte
	if _, err := io.ReadFull(r, lt[:]); err != nil {
		return nil, &Error{KindParseShort, "locktime"}
	}
	tx.LockTime = binary.LittleEndian.Uint32(lt[:])

	return tx, nil
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

func readVarInt(r *bytes.Reader) (uint64, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, &Error{KindParseShort, "varint prefix"}
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

func writeVarStr(buf *bytes.Buffer, b []byte) {
	writeVarInt(buf, uint64(len(b)))
	buf.Write(b)
}

func readVarStr(r *bytes.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, &Error{KindParseShort, "varstr length exceeds remaining buffer"}
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, &Error{KindParseShort, "varstr body"}
	}
	return out, nil
}
