// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/dogeorg/dogecoin-core/crypto"
)

// nextPowerOfTwo returns the next highest power of two from n, or n itself
// if it is already a power of two.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(math.Log2(float64(n))) + 1
	return 1 << exponent
}

// hashMerkleBranches hashes the concatenation of left and right, the
// interior-node step of a merkle tree.
func hashMerkleBranches(left, right chainhash.Hash) chainhash.Hash {
	var buf [64]byte
	copy(buf[0:32], left[:])
	copy(buf[32:64], right[:])
	sum := crypto.Sha256d(buf[:])
	var out chainhash.Hash
	copy(out[:], sum)
	return out
}

// BuildMerkleTree builds the full merkle tree over leaves as a linear
// array (leaves first, then each level of interior nodes, root last),
// grounded on the teacher's btcsuite-derived BuildMerkleTreeStore. Unpaired
// nodes are duplicated rather than padded with nil, matching the Bitcoin-
// family merkle tree's historical duplicate-last-leaf behaviour.
func BuildMerkleTree(leaves []chainhash.Hash) []chainhash.Hash {
	if len(leaves) == 0 {
		return nil
	}
	nextPoT := nextPowerOfTwo(len(leaves))
	arraySize := nextPoT*2 - 1
	tree := make([]chainhash.Hash, arraySize)
	present := make([]bool, arraySize)
	copy(tree, leaves)
	for i := range leaves {
		present[i] = true
	}
	for i := len(leaves); i < nextPoT; i++ {
		tree[i] = leaves[len(leaves)-1]
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		right := tree[i+1]
		if !present[i+1] {
			right = tree[i]
		}
		tree[offset] = hashMerkleBranches(tree[i], right)
		present[offset] = present[i]
		offset++
	}
	return tree
}

// BuildMerkleRoot computes the merkle root over leaves.
func BuildMerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	tree := BuildMerkleTree(leaves)
	if tree == nil {
		return chainhash.Hash{}
	}
	return tree[len(tree)-1]
}

// BuildMerkleBranch computes the authentication path from leaves[index] to
// the root, in the MerkleBranch form AuxPow.Check and DetermineRoot expect
// (spec.md §4.6's "parent-merkle branch and a leaf index").
func BuildMerkleBranch(leaves []chainhash.Hash, index int) MerkleBranch {
	if index < 0 || index >= len(leaves) {
		return MerkleBranch{}
	}

	level := append([]chainhash.Hash(nil), leaves...)
	branch := MerkleBranch{Index: uint32(index)}
	idx := index

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		var sibling chainhash.Hash
		if idx%2 == 0 {
			sibling = level[idx+1]
		} else {
			sibling = level[idx-1]
		}
		branch.Hashes = append(branch.Hashes, sibling)

		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = hashMerkleBranches(level[i], level[i+1])
		}
		level = next
		idx /= 2
	}

	return branch
}
