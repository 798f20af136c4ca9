// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/dogeorg/dogecoin-core/crypto"
)

// Command strings identify a message's payload type in its 12-byte,
// null-padded header field.
const (
	CmdVersion    = "version"
	CmdVerAck     = "verack"
	CmdGetHeaders = "getheaders"
	CmdHeaders    = "headers"
	CmdGetBlocks  = "getblocks"
	CmdInv        = "inv"
	CmdGetData    = "getdata"
	CmdBlock      = "block"
	CmdTx         = "tx"
	CmdPing       = "ping"
	CmdPong       = "pong"
	CmdReject     = "reject"
)

const commandSize = 12

// maxMessagePayload bounds a single message's payload, guarding against a
// malicious or corrupt length field driving an unbounded allocation.
const maxMessagePayload = 32 * 1024 * 1024

// errMessageTooLarge is returned by ReadMessage when a peer's declared
// payload length exceeds maxMessagePayload.
type errMessageTooLarge struct{}

func (errMessageTooLarge) Error() string { return "wire: message payload too large" }

// errBadMagic is returned by ReadMessage when the network magic does not
// match the expected BitcoinNet.
type errBadMagic struct{}

func (errBadMagic) Error() string { return "wire: network magic mismatch" }

// errBadChecksum is returned by ReadMessage when the payload's checksum
// does not match the header's checksum field.
type errBadChecksum struct{}

func (errBadChecksum) Error() string { return "wire: payload checksum mismatch" }

// btcMessage is the subset of github.com/btcsuite/btcd/wire.Message this
// package relies on: messages whose wire layout carries no Dogecoin-
// specific extension (version, verack, getheaders, getblocks, inv,
// getdata, ping, pong, reject) are encoded/decoded directly through it
// (see the package doc in protocol.go). Headers and block messages carry Dogecoin's
// AuxPoW extension and are handled by this package's own MsgHeaders /
// MsgBlock instead.
type btcMessage interface {
	BtcEncode(w io.Writer, pver uint32, enc btcwire.MessageEncoding) error
	BtcDecode(r io.Reader, pver uint32, enc btcwire.MessageEncoding) error
	Command() string
}

// WriteMessage frames msg for net and writes it to w: magic, 12-byte
// command, payload length, payload checksum, payload.
func WriteMessage(w io.Writer, net BitcoinNet, msg btcMessage) error {
	var buf bytes.Buffer
	if err := msg.BtcEncode(&buf, ProtocolVersion, btcwire.BaseEncoding); err != nil {
		return err
	}
	return writeRawMessage(w, net, msg.Command(), buf.Bytes())
}

// DecodeInto reads command's payload into msg.
func DecodeInto(payload []byte, msg btcMessage) error {
	return msg.BtcDecode(bytes.NewReader(payload), ProtocolVersion, btcwire.BaseEncoding)
}

func writeRawMessage(w io.Writer, net BitcoinNet, command string, payload []byte) error {
	if len(payload) > maxMessagePayload {
		return errMessageTooLarge{}
	}
	var header [4 + commandSize + 4 + 4]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(net))
	copy(header[4:4+commandSize], command)
	binary.LittleEndian.PutUint32(header[4+commandSize:4+commandSize+4], uint32(len(payload)))
	checksum := crypto.Sha256d(payload)
	copy(header[4+commandSize+4:], checksum[:4])

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadMessage reads one framed message from r, validating its magic and
// checksum, and returns its command string and raw payload for the
// caller to decode (spec.md §4.7's peer session reads one message at a
// time off the socket).
func ReadMessage(r io.Reader, net BitcoinNet) (command string, payload []byte, err error) {
	var header [4 + commandSize + 4 + 4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return "", nil, err
	}
	if BitcoinNet(binary.LittleEndian.Uint32(header[0:4])) != net {
		return "", nil, errBadMagic{}
	}
	command = string(bytes.TrimRight(header[4:4+commandSize], "\x00"))
	length := binary.LittleEndian.Uint32(header[4+commandSize : 4+commandSize+4])
	if length > maxMessagePayload {
		return "", nil, errMessageTooLarge{}
	}
	wantChecksum := header[4+commandSize+4:]

	payload = make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", nil, err
	}
	gotChecksum := crypto.Sha256d(payload)
	if !bytes.Equal(gotChecksum[:4], wantChecksum) {
		return "", nil, errBadChecksum{}
	}
	return command, payload, nil
}
