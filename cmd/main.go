package main

import (
	"os"
)

var version string

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(-1)
	}
}
