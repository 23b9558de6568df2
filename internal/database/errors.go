// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"errors"
	"fmt"
)

// ErrStorage marks failures originating in the store. The HTTP layer
// maps it to a 500 with a generic body; the underlying cause is logged
// server-side only.
var ErrStorage = errors.New("storage error")

// storageErr wraps err so that errors.Is(err, ErrStorage) holds while
// the cause stays inspectable via errors.Unwrap.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// errUnknownTable guards the watermark query's table whitelist.
func errUnknownTable(table string) error {
	return fmt.Errorf("unknown table %q", table)
}
