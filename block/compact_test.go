// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0x1e0ffff0, 0x1b0404cb, 0x1d00ffff} {
		target := CompactToBig(bits)
		require.Equal(t, bits, BigToCompact(target))
	}
}
