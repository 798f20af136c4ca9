// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyP2PKH(t *testing.T) {
	hash := make([]byte, 20)
	for i := range hash {
		hash[i] = byte(i)
	}
	script, err := BuildP2PKH(hash)
	require.NoError(t, err)
	result := Classify(script)
	require.Equal(t, PubKeyHashTy, result.Class)
	require.Equal(t, hash, result.Hash)
}

func TestClassifyP2SH(t *testing.T) {
	hash := make([]byte, 20)
	script, err := BuildP2SH(hash)
	require.NoError(t, err)
	result := Classify(script)
	require.Equal(t, ScriptHashTy, result.Class)
}

func TestClassifyMultisig(t *testing.T) {
	pubs := [][]byte{make([]byte, 33), make([]byte, 33)}
	pubs[0][0], pubs[1][0] = 0x02, 0x03
	script, err := BuildMultisig(2, pubs)
	require.NoError(t, err)
	result := Classify(script)
	require.Equal(t, MultiSigTy, result.Class)
	require.Equal(t, 2, result.RequiredM)
	require.Len(t, result.PubKeys, 2)
}

func TestClassifyNonStandard(t *testing.T) {
	result := Classify([]byte{0xab, 0xcd})
	require.Equal(t, NonStandardTy, result.Class)
}

func TestEncodePushShortestForm(t *testing.T) {
	require.Equal(t, []byte{0x00}, EncodePush(nil))
	require.Equal(t, []byte{0x01, 0xff}, EncodePush([]byte{0xff}))

	data75 := make([]byte, 75)
	require.Equal(t, byte(75), EncodePush(data75)[0])

	data76 := make([]byte, 76)
	encoded := EncodePush(data76)
	require.Equal(t, byte(0x4c), encoded[0]) // OP_PUSHDATA1
	require.Equal(t, byte(76), encoded[1])

	data256 := make([]byte, 256)
	encoded2 := EncodePush(data256)
	require.Equal(t, byte(0x4d), encoded2[0]) // OP_PUSHDATA2
}

func TestRemoveCodeSeparators(t *testing.T) {
	// push(1 byte) OP_CODESEPARATOR push(1 byte)
	script := []byte{0x01, 0xaa, 0xab, 0x01, 0xbb}
	out, err := RemoveCodeSeparators(script)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xaa, 0x01, 0xbb}, out)
}

func TestRemoveCodeSeparatorsShortBuffer(t *testing.T) {
	_, err := RemoveCodeSeparators([]byte{0x4c}) // OP_PUSHDATA1 with no length byte
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindParseShort, kerr.Kind)
}
