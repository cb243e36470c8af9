package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"movieland/errs"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, errorText(err))
		}
		os.Exit(1)
	}
}

func errorText(err error) string {
	if errs.ErrorCode(err) == errs.EINTERNAL {
		return err.Error()
	}
	return errs.ErrorMessage(err)
}
