// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/transaction"
)

// MsgBlock is the BLOCK payload: a header (possibly carrying AuxPoW)
// followed by its transactions (spec.md §4.7 "On BLOCK: deserialize the
// header, connect via HeadersDB, then deserialize the transaction count
// and each transaction").
type MsgBlock struct {
	Header       *block.Header
	Transactions []*transaction.Tx
}

func (m *MsgBlock) Command() string { return CmdBlock }

// Encode writes m's payload.
func (m *MsgBlock) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.Write(m.Header.Serialize())
	writeVarInt(&buf, uint64(len(m.Transactions)))
	for _, tx := range m.Transactions {
		buf.Write(tx.Serialize())
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Write frames and writes m to w under net.
func (m *MsgBlock) Write(w io.Writer, net BitcoinNet) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return err
	}
	return writeRawMessage(w, net, m.Command(), buf.Bytes())
}

// Decode parses payload into m.
func (m *MsgBlock) Decode(payload []byte) error {
	r := bytes.NewReader(payload)
	h, err := block.ReadHeader(r)
	if err != nil {
		return err
	}
	m.Header = h

	count, err := readVarInt(r)
	if err != nil {
		return err
	}
	m.Transactions = make([]*transaction.Tx, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, err := transaction.ReadTx(r)
		if err != nil {
			return err
		}
		m.Transactions = append(m.Transactions, tx)
	}
	return nil
}
