// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crypto implements the cryptographic primitives the rest of the
// module builds on: ECDSA over secp256k1 (sign/verify/recover), HMAC-SHA512,
// SHA256d, HASH160 and base58check, grounded on
// original_source/src/crypto/key.c and the teacher's addresses package.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for HASH160
)

// Kind enumerates the error kinds defined in spec.md §7 that this package
// can produce.
type Kind string

const (
	KindInvalidSeed Kind = "InvalidSeed"
	KindInvalidKey  Kind = "InvalidKey"
)

// Error is a typed error carrying one of the Kind constants so callers can
// branch with errors.Is / a type switch instead of parsing strings.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

// PrivateKeySize and PublicKeyCompressedLen are the canonical byte lengths used
// throughout the module: a 32-byte big-endian scalar and a 33-byte
// compressed point.
const (
	PrivateKeySize         = 32
	PublicKeyCompressedLen = 33
)

// GeneratePrivateKey rejection-samples 32 bytes of entropy from rand until
// it yields a value in [1, n-1], per spec.md §4.1.
func GeneratePrivateKey(rand func([]byte) error) ([]byte, error) {
	buf := make([]byte, PrivateKeySize)
	for i := 0; i < 1000; i++ {
		if err := rand(buf); err != nil {
			return nil, err
		}
		if isValidPrivateKeyScalar(buf) {
			out := make([]byte, PrivateKeySize)
			copy(out, buf)
			return out, nil
		}
	}
	return nil, &Error{KindInvalidSeed, "failed to sample a valid private key"}
}

func isValidPrivateKeyScalar(b []byte) bool {
	if len(b) != PrivateKeySize {
		return false
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(b)
	if overflow {
		return false
	}
	return !scalar.IsZero()
}

// DerivePublicKey returns the 33-byte compressed public key for priv.
func DerivePublicKey(priv []byte) ([]byte, error) {
	if !isValidPrivateKeyScalar(priv) {
		return nil, &Error{KindInvalidKey, "private key out of range"}
	}
	_, pub := btcec.PrivKeyFromBytes(priv)
	return pub.SerializeCompressed(), nil
}

// SignHash produces a 64-byte compact (r||s) ECDSA signature over a 32-byte
// hash, normalized to low-S per BIP62 (spec.md §4.1).
func SignHash(priv []byte, hash []byte) ([]byte, error) {
	if !isValidPrivateKeyScalar(priv) {
		return nil, &Error{KindInvalidKey, "private key out of range"}
	}
	if len(hash) != 32 {
		return nil, &Error{KindInvalidKey, "hash must be 32 bytes"}
	}
	privKey := secp256k1.PrivKeyFromBytes(priv)
	sig := secp256k1ecdsa.Sign(privKey, hash)
	out := make([]byte, 64)
	rBytes := sig.R().Bytes()
	sBytes := sig.S().Bytes()
	copy(out[32-len(rBytes):32], rBytes[:])
	copy(out[64-len(sBytes):64], sBytes[:])
	return out, nil
}

// SignHashRecoverable is SignHash plus the 1-byte recovery ID needed to
// recover the signer's public key from (sig, hash) alone.
func SignHashRecoverable(priv []byte, hash []byte) (sig []byte, recID byte, err error) {
	if !isValidPrivateKeyScalar(priv) {
		return nil, 0, &Error{KindInvalidKey, "private key out of range"}
	}
	if len(hash) != 32 {
		return nil, 0, &Error{KindInvalidKey, "hash must be 32 bytes"}
	}
	privKey := secp256k1.PrivKeyFromBytes(priv)
	compact := secp256k1ecdsa.SignCompact(privKey, hash, true)
	// secp256k1ecdsa.SignCompact returns [recoveryByte | R | S] with the
	// recovery byte already offset by compactSigMagicOffset + isCompressed.
	header := compact[0]
	recID = (header - 27) &^ 4
	return compact[1:], recID, nil
}

// RecoverPublicKey recovers the 33-byte compressed public key from a
// 64-byte compact signature, the signed hash, and the recovery ID.
func RecoverPublicKey(sig []byte, hash []byte, recID byte) ([]byte, error) {
	if len(sig) != 64 {
		return nil, &Error{KindInvalidKey, "signature must be 64 bytes"}
	}
	if len(hash) != 32 {
		return nil, &Error{KindInvalidKey, "hash must be 32 bytes"}
	}
	compact := make([]byte, 65)
	compact[0] = 27 + 4 + recID
	copy(compact[1:], sig)
	pub, _, err := secp256k1ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, &Error{KindInvalidKey, err.Error()}
	}
	return pub.SerializeCompressed(), nil
}

// VerifySignatureDER verifies a DER-encoded signature over hash using the
// 33-byte compressed public key pub.
func VerifySignatureDER(pub []byte, hash []byte, der []byte) bool {
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false
	}
	sig, err := secp256k1ecdsa.ParseDERSignature(der)
	if err != nil {
		return false
	}
	return sig.Verify(hash, pubKey)
}

// CompactToDER re-encodes a 64-byte compact (r||s) signature as low-S DER,
// normalizing s to the lower half of the curve order per BIP62 (spec.md
// §4.1 "compact_to_der normalized") regardless of whether the input s was
// already low.
func CompactToDER(compact []byte) ([]byte, error) {
	if len(compact) != 64 {
		return nil, errors.New("crypto: compact signature must be 64 bytes")
	}
	var r, s secp256k1.ModNScalar
	r.SetByteSlice(compact[:32])
	s.SetByteSlice(compact[32:])
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	sig := secp256k1ecdsa.NewSignature(&r, &s)
	return sig.Serialize(), nil
}

// Hash160 computes RIPEMD160(SHA256(x)).
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// Sha256d computes SHA256(SHA256(x)).
func Sha256d(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// HMACSHA512 computes HMAC-SHA512(key, data).
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Base58CheckEncode appends a 4-byte double-SHA256 checksum to payload and
// base58-encodes the result.
func Base58CheckEncode(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}

// Base58CheckDecode reverses Base58CheckEncode, validating the checksum.
func Base58CheckDecode(s string) (payload []byte, version byte, err error) {
	return base58.CheckDecode(s)
}
