// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrBadConfig reports an invalid flag, env or config-file value.
	ErrBadConfig = errors.New("cli: invalid configuration")

	// ErrBadInput reports an unreadable or incomplete matrix document.
	ErrBadInput = errors.New("cli: invalid input")
)
