// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/chaincfg"
)

// fileMagic and fileVersion identify the on-disk headers DB format
// (spec.md §4.8 "Headers DB file").
var fileMagic = [4]byte{0xa8, 0xf0, 0x11, 0xc5}

const fileVersion uint32 = 1

// recordSize is the per-header on-disk record: 32-byte hash, 4-byte LE
// height, 80-byte header (spec.md §4.8).
const recordSize = 32 + 4 + 80

// Open loads an existing headers DB file at path, or creates one if it
// does not exist, and keeps it open for subsequent Connect calls to
// append to. Corruption policy: refuse to load on magic or genesis
// mismatch; truncate trailing partial records (spec.md §4.8).
func Open(path string, params *chaincfg.Params) (*DB, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	db := New(params)
	db.path = path
	db.file = f

	if info.Size() == 0 {
		if err := writeFileHeader(f, params); err != nil {
			f.Close()
			return nil, err
		}
		return db, nil
	}

	if err := db.loadExisting(f, params); err != nil {
		f.Close()
		return nil, err
	}
	return db, nil
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

func (db *DB) loadExisting(f *os.File, params *chaincfg.Params) error {
	r := bufio.NewReader(f)

	header := make([]byte, 4+4+32)
	if _, err := io.ReadFull(r, header); err != nil {
		return &Error{KindFileFormatInvalid, "file shorter than header"}
	}
	if string(header[0:4]) != string(fileMagic[:]) {
		return &Error{KindFileFormatInvalid, "magic mismatch"}
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != fileVersion {
		return &Error{KindFileFormatInvalid, "unsupported version"}
	}
	var genesis chainhash.Hash
	copy(genesis[:], header[8:40])
	if genesis != *params.GenesisHash {
		return &Error{KindFileFormatInvalid, "genesis hash mismatch"}
	}

	offset := int64(len(header))
	for {
		rec := make([]byte, recordSize)
		n, err := io.ReadFull(r, rec)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF || (err != nil && n > 0 && n < recordSize) {
			// Trailing partial record: truncate it away (spec.md §4.8).
			if truncErr := f.Truncate(offset); truncErr != nil {
				return truncErr
			}
			break
		}
		if err != nil {
			return &Error{KindFileFormatInvalid, "unexpected read error"}
		}

		var hash chainhash.Hash
		copy(hash[:], rec[0:32])
		height := int32(binary.LittleEndian.Uint32(rec[32:36]))
		// The on-disk record is the fixed 80-byte plain header
		// (spec.md §4.8): parse it as such, ignoring the AuxPow
		// version bit, since AuxPow data is never persisted here.
		h, err := block.ParsePlainHeader(rec[36:116])
		if err != nil {
			return &Error{KindFileFormatInvalid, "malformed header record"}
		}

		var parent *Node
		if height > 0 {
			parent, _ = db.byHash[h.PrevBlock]
		}
		node := &Node{Hash: hash, Height: height, Header: *h, Prev: parent}
		db.byHash[hash] = node
		if height > db.tip.Height {
			db.tip = node
		}
		offset += recordSize
	}
	return nil
}

func (db *DB) appendRecord(n *Node) error {
	if _, err := db.file.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	rec := make([]byte, recordSize)
	copy(rec[0:32], n.Hash[:])
	binary.LittleEndian.PutUint32(rec[32:36], uint32(n.Height))
	copy(rec[36:116], n.Header.PlainBytes())
	if _, err := db.file.Write(rec); err != nil {
		return err
	}
	return fsyncFile(db.file)
}
