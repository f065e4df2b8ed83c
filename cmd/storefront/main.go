package main

import (
	"fmt"
	"os"
)

func main() {
	root, closeApp := newRootCommand()
	err := root.Execute()
	reportError(os.Stderr, err)
	if cerr := closeApp(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
