// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/dogeorg/dogecoin-core/block"
)

// MaxHeadersResults is the largest number of headers a single HEADERS
// message carries (spec.md §4.7 step 6).
const MaxHeadersResults = 2000

// MsgHeaders is the HEADERS payload: a list of block headers, each
// followed by a transaction-count varint that is always zero on the wire
// (spec.md §4.7 step 4, "parse 80 bytes + trailing tx-count varint").
// Unlike github.com/btcsuite/btcd/wire.MsgHeaders, each header here may
// carry a trailing AuxPoW section, so this package parses it directly
// with block.ReadHeader rather than delegating to btcd's fixed-80-byte
// decoder.
type MsgHeaders struct {
	Headers []*block.Header
}

func (m *MsgHeaders) Command() string { return CmdHeaders }

// Encode writes m's payload.
func (m *MsgHeaders) Encode(w io.Writer) error {
	var buf bytes.Buffer
	writeVarInt(&buf, uint64(len(m.Headers)))
	for _, h := range m.Headers {
		buf.Write(h.Serialize())
		buf.WriteByte(0x00) // tx-count varint, always zero for headers
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Write frames and writes m to w under net.
func (m *MsgHeaders) Write(w io.Writer, net BitcoinNet) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return err
	}
	return writeRawMessage(w, net, m.Command(), buf.Bytes())
}

// Decode parses payload into m.
func (m *MsgHeaders) Decode(payload []byte) error {
	r := bytes.NewReader(payload)
	count, err := readVarInt(r)
	if err != nil {
		return err
	}
	m.Headers = make([]*block.Header, 0, count)
	for i := uint64(0); i < count; i++ {
		h, err := block.ReadHeader(r)
		if err != nil {
			return err
		}
		if _, err := readVarInt(r); err != nil { // discard tx-count
			return err
		}
		m.Headers = append(m.Headers, h)
	}
	return nil
}
