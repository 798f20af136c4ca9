// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the p2p message layer the SPV client speaks:
// Dogecoin's network magic values, the service-flag bits a peer can
// advertise, the message envelope (magic, command, length, checksum) with
// its own framing and varint codec, and its own MsgHeaders/MsgBlock, whose
// payloads carry Dogecoin's AuxPoW header extension. The other message
// types (MsgVersion, MsgVerAck, MsgGetHeaders, MsgGetBlocks, MsgInv,
// MsgGetData, MsgPing, MsgPong, MsgReject) are github.com/btcsuite/btcd/
// wire's, encoded and decoded through their BtcEncode/BtcDecode methods.
package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// ProtocolVersion is the protocol version this client speaks.
const ProtocolVersion uint32 = 70015

// BIP0031Version is the protocol version after which ping carries a nonce
// and pong exists.
const BIP0031Version uint32 = 60000

// ServiceFlag identifies services supported by a peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork indicates a full node serving the complete chain.
	SFNodeNetwork ServiceFlag = 1 << iota

	// SFNodeGetUTXO indicates support for the getutxos/utxos messages.
	SFNodeGetUTXO

	// SFNodeBloom indicates support for bloom-filtered connections.
	SFNodeBloom
)

var sfStrings = map[ServiceFlag]string{
	SFNodeNetwork: "SFNodeNetwork",
	SFNodeGetUTXO: "SFNodeGetUTXO",
	SFNodeBloom:   "SFNodeBloom",
}

var orderedSFStrings = []ServiceFlag{SFNodeNetwork, SFNodeGetUTXO, SFNodeBloom}

// HasFlag reports whether f has the s bit set.
func (f ServiceFlag) HasFlag(s ServiceFlag) bool {
	return f&s == s
}

// String renders f in human-readable form.
func (f ServiceFlag) String() string {
	if f == 0 {
		return "0x0"
	}
	s := ""
	for _, flag := range orderedSFStrings {
		if f&flag == flag {
			s += sfStrings[flag] + "|"
			f -= flag
		}
	}
	s = strings.TrimRight(s, "|")
	if f != 0 {
		s += "|0x" + strconv.FormatUint(uint64(f), 16)
	}
	return strings.TrimLeft(s, "|")
}

// BitcoinNet represents the magic number identifying a Dogecoin-family
// network on the wire.
type BitcoinNet uint32

const (
	// MainNet is the magic number for Dogecoin mainnet.
	MainNet BitcoinNet = 0xc0c0c0c0

	// TestNet3 is the magic number for the Dogecoin test network.
	TestNet3 BitcoinNet = 0xfcc1b7dc

	// RegTest is the magic number for a local regression test network.
	RegTest BitcoinNet = 0xfabfb5da
)

var bnStrings = map[BitcoinNet]string{
	MainNet:  "MainNet",
	TestNet3: "TestNet3",
	RegTest:  "RegTest",
}

// String renders n in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}
