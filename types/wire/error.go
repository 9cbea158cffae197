// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTrailingBytes is returned when a caller demands that a buffer holds
// exactly one encoded value and bytes are left over after decoding it.
var ErrTrailingBytes = errors.New("unexpected trailing bytes")

// MessageError describes an issue with a message.
// Examples are non-canonical integers, counts that cannot fit into a block
// and transaction formats this package does not know.
//
// This provides a mechanism for the caller to type assert the error to
// differentiate between general io errors such as io.EOF and issues that
// resulted from malformed messages.
type MessageError struct {
	Func        string // Function name
	Description string // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%v: %v", e.Func, e.Description)
	}
	return e.Description
}

// messageError creates an error for the given function and description.
func messageError(f string, desc string) *MessageError {
	return &MessageError{Func: f, Description: desc}
}

// HexError is returned by the hex constructors when the input is not a
// valid hex string.  The block bytes are never looked at in that case.
type HexError struct {
	Err error
}

func (e *HexError) Error() string {
	return "malformed hex input: " + e.Err.Error()
}

func (e *HexError) Unwrap() error { return e.Err }
