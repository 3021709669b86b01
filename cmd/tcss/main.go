// Package main provides the tcss command line tool.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errCheckFailed signals a failing check whose report was already written.
var errCheckFailed = errors.New("check failed")

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}
	if !errors.Is(err, errCheckFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
