// Package main is the entry point for the rbcli command interpreter:
// it feeds stdin's k/q command stream into the order-statistic tree
// and prints the range counts on stdout.
package main

import (
	"os"

	"github.com/rozmar1n/RB-tree/interp"
	"github.com/rozmar1n/RB-tree/xlog"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := xlog.NewXLogger(
		xlog.WithComponent("rbcli"),
		xlog.WithWriter(os.Stderr),
	)
	defer func() {
		_ = logger.Sync()
	}()

	if err := interp.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error(err, "fatal input error")
		return 1
	}
	return 0
}
