// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build unix

package headersdb

import (
	"os"

	"golang.org/x/sys/unix"
)

// fsyncFile flushes f's data to stable storage. On unix this uses
// fdatasync, which skips the metadata flush fsync would otherwise force
// (spec.md §4.8 "flush + fdatasync-equivalent").
func fsyncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
