// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mnemonic implements BIP39 entropy/mnemonic/seed conversion,
// grounded on original_source/src/bip39.c and the teacher corpus's use of
// golang.org/x/crypto/pbkdf2 and golang.org/x/text/unicode/norm for the
// same purpose.
package mnemonic

import (
	"crypto/sha256"
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/dogeorg/dogecoin-core/mnemonic/wordlists"
)

// Kind enumerates mnemonic-package error kinds from spec.md §4.3.
type Kind string

const (
	KindUnsupportedLanguage Kind = "UnsupportedLanguage"
	KindBadWordCount        Kind = "BadWordCount"
	KindUnknownWord         Kind = "UnknownWord"
	KindChecksumMismatch    Kind = "ChecksumMismatch"
	KindPassphraseTooLong   Kind = "PassphraseTooLong"
)

// Error carries a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

const maxPassphraseLen = 256

// validEntropyBits are the entropy sizes spec.md §4.3 accepts, matching
// the word counts 12/15/18/21/24.
var validEntropyBits = map[int]bool{128: true, 160: true, 192: true, 224: true, 256: true}

// NewMnemonic encodes entropy (whose bit length must be one of
// 128/160/192/224/256) into a mnemonic phrase in the given language
// (spec.md §4.3 "Encoding").
func NewMnemonic(entropy []byte, lang wordlists.Language) (string, error) {
	bits := len(entropy) * 8
	if !validEntropyBits[bits] {
		return "", &Error{KindBadWordCount, "entropy must be 128/160/192/224/256 bits"}
	}
	words := wordlists.For(lang)
	if words == nil {
		return "", &Error{KindUnsupportedLanguage, string(lang)}
	}

	checksumBits := bits / 32
	hash := sha256.Sum256(entropy)

	// Concatenate entropy bits followed by the leading checksumBits bits
	// of SHA256(entropy), then slice into 11-bit groups.
	totalBits := bits + checksumBits
	bitBuf := make([]byte, 0, totalBits/8+1)
	bitBuf = append(bitBuf, entropy...)
	bitBuf = append(bitBuf, hash[:]...)

	indices := sliceBits11(bitBuf, totalBits)

	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = words[idx]
	}
	return strings.Join(out, lang.Delimiter()), nil
}

// sliceBits11 reads n bits from buf (MSB-first) and returns them as groups
// of 11-bit indices.
func sliceBits11(buf []byte, n int) []int {
	count := n / 11
	out := make([]int, count)
	bitPos := 0
	for i := 0; i < count; i++ {
		v := 0
		for b := 0; b < 11; b++ {
			byteIdx := bitPos / 8
			bitIdx := 7 - uint(bitPos%8)
			bit := 0
			if byteIdx < len(buf) {
				bit = int((buf[byteIdx] >> bitIdx) & 1)
			}
			v = (v << 1) | bit
			bitPos++
		}
		out[i] = v
	}
	return out
}

// Decode reverses NewMnemonic: given a phrase and its language, validates
// word-count/membership/checksum and returns the original entropy
// (spec.md §4.3, §8 "mnemonic_check").
func Decode(phrase string, lang wordlists.Language) ([]byte, error) {
	words := wordlists.For(lang)
	if words == nil {
		return nil, &Error{KindUnsupportedLanguage, string(lang)}
	}
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}

	parts := splitWords(phrase, lang)
	wordCount := len(parts)
	switch wordCount {
	case 12, 15, 18, 21, 24:
	default:
		return nil, &Error{KindBadWordCount, "mnemonic must have 12/15/18/21/24 words"}
	}

	totalBits := wordCount * 11
	entropyBits := totalBits * 32 / 33
	checksumBits := totalBits - entropyBits

	bitBuf := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for _, w := range parts {
		idx, ok := index[w]
		if !ok {
			return nil, &Error{KindUnknownWord, w}
		}
		for b := 10; b >= 0; b-- {
			bit := (idx >> uint(b)) & 1
			if bit == 1 {
				bitBuf[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}

	entropy := make([]byte, entropyBits/8)
	copy(entropy, bitBuf[:len(entropy)])

	hash := sha256.Sum256(entropy)
	gotChecksum := extractBits(bitBuf, entropyBits, checksumBits)
	wantChecksum := extractBits(hash[:], 0, checksumBits)
	if gotChecksum != wantChecksum {
		return nil, &Error{KindChecksumMismatch, "checksum does not match entropy"}
	}
	return entropy, nil
}

// extractBits reads n bits from buf starting at bit offset start and
// returns them as an unsigned integer.
func extractBits(buf []byte, start, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		pos := start + i
		byteIdx := pos / 8
		bitIdx := uint(7 - pos%8)
		bit := 0
		if byteIdx < len(buf) {
			bit = int((buf[byteIdx] >> bitIdx) & 1)
		}
		v = (v << 1) | bit
	}
	return v
}

func splitWords(phrase string, lang wordlists.Language) []string {
	normalized := norm.NFKD.String(phrase)
	delim := lang.Delimiter()
	fields := strings.Split(strings.TrimSpace(normalized), delim)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Check reports whether phrase is a well-formed, checksum-valid mnemonic
// in the given language (spec.md §8 "for every mnemonic ... mnemonic_check
// passes").
func Check(phrase string, lang wordlists.Language) bool {
	_, err := Decode(phrase, lang)
	return err == nil
}

// Seed derives the 64-byte BIP39 seed from a mnemonic phrase and optional
// passphrase (spec.md §4.3 "Seed derivation"): NFKD-normalized mnemonic as
// PBKDF2 password, NFKD-normalized "mnemonic"+passphrase as salt, 2048
// iterations, HMAC-SHA512, 64-byte output.
func Seed(phrase, passphrase string) ([]byte, error) {
	if len(passphrase) > maxPassphraseLen {
		return nil, &Error{KindPassphraseTooLong, "passphrase exceeds 256 bytes"}
	}
	password := norm.NFKD.String(phrase)
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), 2048, 64, sha512.New), nil
}
