// SPDX-License-Identifier: MIT

package queueapp

import (
	"fmt"
	"math"
	"strconv"
)

// Operation is one queue command accepted on the command line.
type Operation int

// enumeration of Operation
const (
	OpPush Operation = iota
	OpGet
	OpLength
)

// String returns the command-line spelling of op.
func (op Operation) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpGet:
		return "get"
	case OpLength:
		return "length"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// arity is the number of operands each operation consumes.
func (op Operation) arity() int {
	if op == OpPush {
		return 1
	}

	return 0
}

// command is a parsed operation with its operand.
type command struct {
	op    Operation
	value float64 // push only
}

// ParseOperation maps a command-line word to an Operation.
// Matching is case-sensitive.
func ParseOperation(arg string) (Operation, error) {
	switch arg {
	case "push":
		return OpPush, nil
	case "get":
		return OpGet, nil
	case "length":
		return OpLength, nil
	default:
		return 0, fmt.Errorf("%q: %w", arg, ErrWrongOperation)
	}
}

// ParseNumber parses a push operand. NaN and ±Inf are rejected.
func ParseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", arg, ErrWrongNumber)
	}

	return v, nil
}

// ValidateNumberOfArguments checks that op has all its operands among
// rest, the words that follow it on the command line.
func ValidateNumberOfArguments(op Operation, rest []string) error {
	if len(rest) < op.arity() {
		return ErrArgumentCount
	}

	return nil
}

// parse turns the words after the program name into commands, validating
// everything before any command runs.
func parse(words []string) ([]command, error) {
	cmds := make([]command, 0, len(words))
	for i := 0; i < len(words); i++ {
		op, err := ParseOperation(words[i])
		if err != nil {
			return nil, err
		}
		if err = ValidateNumberOfArguments(op, words[i+1:]); err != nil {
			return nil, err
		}
		cmd := command{op: op}
		if op == OpPush {
			i++
			if cmd.value, err = ParseNumber(words[i]); err != nil {
				return nil, err
			}
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}
