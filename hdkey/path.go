// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"strconv"
	"strings"
)

// ParsePath parses a derivation path like "m/0'/1/2h/2/1000000000" into a
// sequence of child indices, accepting the hardened-marker spellings seen
// across wallet tooling in the pack: "'", "h", "H", "p" (spec.md §4.2
// "Path parsing"). A bare "m" or "M" denotes the empty path (the node
// itself, no derivation).
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, &Error{KindPathSyntax, "empty path"}
	}
	segments := strings.Split(path, "/")
	if segments[0] == "m" || segments[0] == "M" {
		segments = segments[1:]
	}
	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, &Error{KindPathSyntax, "empty path segment"}
		}
		hardened := false
		num := seg
		last := seg[len(seg)-1]
		switch last {
		case '\'', 'h', 'H', 'p':
			hardened = true
			num = seg[:len(seg)-1]
		}
		if num == "" {
			return nil, &Error{KindPathSyntax, "missing index in segment " + seg}
		}
		v, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return nil, &Error{KindPathSyntax, "invalid index in segment " + seg}
		}
		if hardened {
			if v >= uint64(HardenedKeyStart) {
				return nil, &Error{KindPathSyntax, "index out of range before applying hardened offset in segment " + seg}
			}
			v += uint64(HardenedKeyStart)
		}
		indices = append(indices, uint32(v))
	}
	return indices, nil
}

// DerivePath walks n through each index in path in turn, returning the
// final node. A KindWeakChild error at any step aborts the walk; per
// BIP32 this is astronomically unlikely and callers that need
// automatic retry should call Derive directly with i+1.
func (n *Node) DerivePath(path []uint32) (*Node, error) {
	cur := n
	for _, idx := range path {
		next, err := cur.Derive(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// DerivePathString is ParsePath followed by DerivePath.
func (n *Node) DerivePathString(path string) (*Node, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return n.DerivePath(indices)
}
