// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/dogeorg/dogecoin-core/chaincfg"
	"github.com/dogeorg/dogecoin-core/hdkey"
	"github.com/dogeorg/dogecoin-core/transaction"
)

// fileMagic and fileVersion identify the on-disk wallet format, sharing
// headersdb's "magic + version + genesis hash" header shape (spec.md §4.8
// "Wallet DB file").
var fileMagic = [4]byte{0xd0, 0x9e, 0xa1, 0x37}

const fileVersion uint32 = 1

// recordType tags each variable-length record in the wallet file.
type recordType byte

const (
	recordMasterKey   recordType = 0
	recordPubkeyCache recordType = 1
	recordTx          recordType = 2
)

// record is one typed, length-prefixed entry read back from the file.
type record struct {
	typ     recordType
	hash160 [20]byte
	extKey  string
	height  int32
	txid    [32]byte
	txBytes []byte
}

type walletFile struct {
	f    *os.File
	path string
}

// openWalletFile loads path's records, or creates a fresh file with just
// the magic/version/genesis header if it does not exist.
func openWalletFile(path string, params *chaincfg.Params) (*walletFile, []record, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	wf := &walletFile{f: f, path: path}

	if info.Size() == 0 {
		if err := writeFileHeader(f, params); err != nil {
			f.Close()
			return nil, nil, err
		}
		return wf, nil, nil
	}

	records, err := wf.loadExisting(params)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return wf, records, nil
}

func writeFileHeader(f *os.File, params *chaincfg.Params) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, 4+4+32)
	copy(buf[0:4], fileMagic[:])
	binary.LittleEndian.PutUint32(buf[4:8], fileVersion)
	copy(buf[8:40], params.GenesisHash[:])
	if _, err := f.Write(buf); err != nil {
		return err
	}
	return fsyncFile(f)
}

func (wf *walletFile) loadExisting(params *chaincfg.Params) ([]record, error) {
	if _, err := wf.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	r := bufio.NewReader(wf.f)

	header := make([]byte, 4+4+32)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, &Error{KindFileFormatInvalid, "file shorter than header"}
	}
	if string(header[0:4]) != string(fileMagic[:]) {
		return nil, &Error{KindFileFormatInvalid, "magic mismatch"}
	}
	if binary.LittleEndian.Uint32(header[4:8]) != fileVersion {
		return nil, &Error{KindFileFormatInvalid, "unsupported version"}
	}
	if string(header[8:40]) != string(params.GenesisHash[:]) {
		return nil, &Error{KindFileFormatInvalid, "genesis hash mismatch"}
	}

	var records []record
	offset := int64(len(header))
	for {
		rec, n, err := readRecord(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*Error); ok {
				return nil, err
			}
			// Partial trailing record: truncate it away, matching
			// headersdb's corruption policy (spec.md §4.8).
			if truncErr := wf.f.Truncate(offset); truncErr != nil {
				return nil, truncErr
			}
			break
		}
		records = append(records, rec)
		offset += int64(n)
	}
	return records, nil
}

// readRecord parses one (type byte, varint length, payload) record.
func readRecord(r *bufio.Reader) (record, int, error) {
	typByte, err := r.ReadByte()
	if err != nil {
		return record{}, 0, err
	}
	length, lenBytes, err := readVarInt(r)
	if err != nil {
		return record{}, 0, io.ErrUnexpectedEOF
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return record{}, 0, io.ErrUnexpectedEOF
	}

	rec := record{typ: recordType(typByte)}
	switch rec.typ {
	case recordMasterKey:
		rec.extKey = string(payload)
	case recordPubkeyCache:
		if len(payload) < 20 {
			return record{}, 0, io.ErrUnexpectedEOF
		}
		copy(rec.hash160[:], payload[0:20])
		rec.extKey = string(payload[20:])
	case recordTx:
		if len(payload) < 4+32 {
			return record{}, 0, io.ErrUnexpectedEOF
		}
		rec.height = int32(binary.LittleEndian.Uint32(payload[0:4]))
		copy(rec.txid[:], payload[4:36])
		rec.txBytes = append([]byte(nil), payload[36:]...)
	default:
		return record{}, 0, &Error{KindFileFormatInvalid, "unknown record type"}
	}
	return rec, 1 + lenBytes + len(payload), nil
}

func (wf *walletFile) appendMasterKey(xpriv string) error {
	payload := []byte(xpriv)
	return wf.appendRecord(recordMasterKey, payload)
}

func (wf *walletFile) appendPubkeyCache(hash160 [20]byte, extKey string) error {
	payload := make([]byte, 0, 20+len(extKey))
	payload = append(payload, hash160[:]...)
	payload = append(payload, extKey...)
	return wf.appendRecord(recordPubkeyCache, payload)
}

func (wf *walletFile) appendTx(height int32, txid [32]byte, txBytes []byte) error {
	payload := make([]byte, 0, 4+32+len(txBytes))
	var h [4]byte
	binary.LittleEndian.PutUint32(h[:], uint32(height))
	payload = append(payload, h[:]...)
	payload = append(payload, txid[:]...)
	payload = append(payload, txBytes...)
	return wf.appendRecord(recordTx, payload)
}

func (wf *walletFile) appendRecord(typ recordType, payload []byte) error {
	if _, err := wf.f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	buf := make([]byte, 0, 1+9+len(payload))
	buf = append(buf, byte(typ))
	buf = appendVarInt(buf, uint64(len(payload)))
	buf = append(buf, payload...)
	if _, err := wf.f.Write(buf); err != nil {
		return err
	}
	return fsyncFile(wf.f)
}

func (wf *walletFile) close() error {
	return wf.f.Close()
}

// readVarInt reads a Bitcoin-style compact size-prefix, returning the
// value and the number of bytes consumed.
func readVarInt(r *bufio.Reader) (uint64, int, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	switch {
	case first < 0xfd:
		return uint64(first), 1, nil
	case first == 0xfd:
		b := make([]byte, 2)
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b)), 3, nil
	case first == 0xfe:
		b := make([]byte, 4)
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, 0, err
		}
		return uint64(binary.LittleEndian.Uint32(b)), 5, nil
	default:
		b := make([]byte, 8)
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, 0, err
		}
		return binary.LittleEndian.Uint64(b), 9, nil
	}
}

func appendVarInt(buf []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(buf, byte(n))
	case n <= 0xffff:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(n))
		return append(append(buf, 0xfd), b...)
	case n <= 0xffffffff:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(n))
		return append(append(buf, 0xfe), b...)
	default:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, n)
		return append(append(buf, 0xff), b...)
	}
}

// applyRecord replays one loaded record into the in-memory wallet state.
func (w *Wallet) applyRecord(rec record) error {
	switch rec.typ {
	case recordMasterKey:
		node, _, isPrivate, err := hdkey.Deserialize(rec.extKey)
		if err != nil {
			return err
		}
		if !isPrivate {
			return &Error{KindFileFormatInvalid, "MASTERKEY record did not carry a private extended key"}
		}
		w.master = node

	case recordPubkeyCache:
		if rec.extKey == "" {
			w.watchOnly[rec.hash160] = true
			return nil
		}
		node, _, _, err := hdkey.Deserialize(rec.extKey)
		if err != nil {
			return err
		}
		w.nodesByHash160[rec.hash160] = node
		if node.ChildNum+1 > w.nextChildIndex {
			w.nextChildIndex = node.ChildNum + 1
		}

	case recordTx:
		tx, err := transaction.Deserialize(rec.txBytes)
		if err != nil {
			return err
		}
		w.txs[rec.txid] = &walletTx{Height: rec.height, Tx: tx}
		isCoinbase := tx.IsCoinbase()
		for i, out := range tx.TxOut {
			h160, ok := w.outputHash160(out)
			if !ok || !w.isWatched(h160[:]) {
				continue
			}
			op := transaction.OutPoint{Hash: rec.txid, Index: uint32(i)}
			w.utxos[op] = &utxo{OutPoint: op, Value: out.Value, Hash160: h160, Height: rec.height, Coinbase: isCoinbase}
		}
		for _, in := range tx.TxIn {
			delete(w.utxos, in.PreviousOutPoint)
		}
	}
	return nil
}
