// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !unix

package wallet

import "os"

// fsyncFile is the non-unix fallback: a full (*os.File).Sync.
func fsyncFile(f *os.File) error {
	return f.Sync()
}
