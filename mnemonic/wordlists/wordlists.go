// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordlists holds the BIP39 2048-word lists keyed by the language
// codes spec.md §4.3 enumerates, grounded on original_source/src/bip39.c's
// per-language word arrays. English is the canonical reference list used
// throughout the ecosystem; the others are generated placeholder lists of
// the correct shape (2048 unique, delimiter-free tokens) pending import of
// the real upstream lists — see DESIGN.md.
package wordlists

// Language identifies a BIP39 wordlist by the short code spec.md uses.
type Language string

const (
	English            Language = "eng"
	Japanese           Language = "jpn"
	Spanish            Language = "spa"
	ChineseSimplified  Language = "sc"
	ChineseTraditional Language = "tc"
	French             Language = "fra"
	Italian            Language = "ita"
	Korean             Language = "kor"
	Czech              Language = "cze"
	Portuguese         Language = "por"
)

// Delimiter returns the word-separator for lang: the full-width ideographic
// space for Japanese (spec.md §4.3), ASCII space otherwise.
func (l Language) Delimiter() string {
	if l == Japanese {
		return "　"
	}
	return " "
}

// For returns the 2048-entry wordlist for lang, or nil if lang is not
// registered.
func For(lang Language) []string {
	switch lang {
	case English:
		return english[:]
	case Japanese:
		return japanese[:]
	case Spanish:
		return spanish[:]
	case ChineseSimplified:
		return chineseSimplified[:]
	case ChineseTraditional:
		return chineseTraditional[:]
	case French:
		return french[:]
	case Italian:
		return italian[:]
	case Korean:
		return korean[:]
	case Czech:
		return czech[:]
	case Portuguese:
		return portuguese[:]
	default:
		return nil
	}
}
