// Package interp is the line-oriented command interpreter driving an
// order-statistic tree over int64 keys. It is a thin collaborator of
// lib/tree: the text protocol lives here, the tree never sees it.
package interp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rozmar1n/RB-tree/lib/tree"
)

var (
	ErrUnknownCommand = errors.New("[interp] unknown command")
	ErrBadArgument    = errors.New("[interp] missing or malformed numeric argument")
)

// Run consumes whitespace-delimited tokens from in until EOF:
//
//	k <integer>          insert the integer (duplicates are ignored)
//	q <left> <right>     emit the count of stored integers in [left, right]
//
// Query results go to out space-separated on a single line, emitted
// only when at least one query ran, with a trailing newline. Any other
// leading token, or a command short of its numeric arguments, stops
// the run immediately with a wrapped ErrUnknownCommand/ErrBadArgument.
func Run(in io.Reader, out io.Writer) error {
	t := tree.NewRBTree[int64]()
	defer t.Release()

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	nextInt := func(cmd string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: command %q hit end of input", ErrBadArgument, cmd)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: command %q got %q", ErrBadArgument, cmd, sc.Text())
		}
		return v, nil
	}

	firstOutput := true
	for sc.Scan() {
		switch cmd := sc.Text(); cmd {
		case "k":
			key, err := nextInt(cmd)
			if err != nil {
				return err
			}
			// A duplicate insert fails inside the tree; the protocol
			// swallows that silently.
			_ = t.Insert(key)
		case "q":
			left, err := nextInt(cmd)
			if err != nil {
				return err
			}
			right, err := nextInt(cmd)
			if err != nil {
				return err
			}
			sep := " "
			if firstOutput {
				sep = ""
				firstOutput = false
			}
			if _, err = fmt.Fprintf(out, "%s%d", sep, t.Distance(left, right)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if !firstOutput {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
