// SPDX-License-Identifier: MIT

package queueapp

import "errors"

var (
	// ErrWrongOperation is returned for an unknown operation name.
	ErrWrongOperation = errors.New("queueapp: wrong operation format")

	// ErrWrongNumber is returned when a push operand is not a finite number.
	ErrWrongNumber = errors.New("queueapp: wrong number format")

	// ErrArgumentCount is returned when push is missing its operand.
	ErrArgumentCount = errors.New("queueapp: push needs 1 argument")
)

// User-facing messages, one per failure class.
const (
	msgWrongOperation = "Wrong operation format!"
	msgWrongNumber    = "Wrong number format!"
	msgArgumentCount  = "ERROR: Should be 1 argument for push."
	msgEmpty          = "Queue is empty!"
)

// message maps a parse failure to the text shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, ErrWrongOperation):
		return msgWrongOperation
	case errors.Is(err, ErrWrongNumber):
		return msgWrongNumber
	case errors.Is(err, ErrArgumentCount):
		return msgArgumentCount
	default:
		return err.Error()
	}
}
