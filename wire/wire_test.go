// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/dogeorg/dogecoin-core/block"
	"github.com/dogeorg/dogecoin-core/transaction"
)

func TestWriteReadMessageRoundTrip(t *testing.T) {
	ping := &btcwire.MsgPing{Nonce: 0xdeadbeef}

	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, RegTest, ping))

	command, payload, err := ReadMessage(&buf, RegTest)
	require.NoError(t, err)
	require.Equal(t, CmdPing, command)

	var got btcwire.MsgPing
	require.NoError(t, DecodeInto(payload, &got))
	require.Equal(t, ping.Nonce, got.Nonce)
}

func TestReadMessageRejectsWrongMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, MainNet, &btcwire.MsgVerAck{}))

	_, _, err := ReadMessage(&buf, TestNet3)
	require.Error(t, err)
}

func TestReadMessageRejectsChecksumTamper(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, RegTest, &btcwire.MsgPing{Nonce: 1}))
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff // corrupt last payload byte without touching the header

	_, _, err := ReadMessage(bytes.NewReader(raw), RegTest)
	require.Error(t, err)
}

func sampleHeader(version int32) *block.Header {
	return &block.Header{Version: version, Timestamp: 1700000000, Bits: 0x1e0ffff0, Nonce: 7}
}

func TestMsgHeadersEncodeDecodeRoundTrip(t *testing.T) {
	m := &MsgHeaders{Headers: []*block.Header{sampleHeader(1), sampleHeader(1), sampleHeader(1)}}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	var got MsgHeaders
	require.NoError(t, got.Decode(buf.Bytes()))
	require.Len(t, got.Headers, 3)
	require.Equal(t, m.Headers[0].Hash(), got.Headers[0].Hash())
}

func TestMsgBlockEncodeDecodeRoundTrip(t *testing.T) {
	tx := &transaction.Tx{
		Version: 1,
		TxIn:    []*transaction.TxIn{{PreviousOutPoint: transaction.OutPoint{Index: 0xffffffff}, SignatureScript: []byte{0x01}}},
		TxOut:   []*transaction.TxOut{{Value: 5000000000, PkScript: []byte{0x6a}}},
	}
	m := &MsgBlock{Header: sampleHeader(1), Transactions: []*transaction.Tx{tx}}

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	var got MsgBlock
	require.NoError(t, got.Decode(buf.Bytes()))
	require.Equal(t, m.Header.Hash(), got.Header.Hash())
	require.Len(t, got.Transactions, 1)
	require.Equal(t, tx.Txid(), got.Transactions[0].Txid())
}
