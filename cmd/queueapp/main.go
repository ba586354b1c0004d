// SPDX-License-Identifier: MIT

// Package main runs the queue application:
//
//	queueapp push 5 push 7 get length
//
// Set QUEUEAPP_LOG_LEVEL=debug to trace each operation on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tmatrix/internal/logging"
	"github.com/katalvlaran/tmatrix/queueapp"
)

func main() {
	logger, err := logging.New(os.Getenv("QUEUEAPP_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println(queueapp.New(queueapp.WithLogger(logger)).Run(os.Args))
}
