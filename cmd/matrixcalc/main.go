// SPDX-License-Identifier: MIT

// Package main runs the matrix calculator:
//
//	matrixcalc det a.yaml
//	matrixcalc inverse --type float --method lu -o yaml a.yaml
//	matrixcalc random --rows 4 --cols 4 --seed 7 -o yaml | matrixcalc det -
//
// Flags may also be set through MATRIXCALC_* environment variables or a
// YAML file passed with --config.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/tmatrix/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
