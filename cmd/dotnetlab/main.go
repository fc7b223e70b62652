package main

import (
	"os"
)

func main() {
	if err := executeAndReport(newRootCommand(), os.Stderr); err != nil {
		os.Exit(1)
	}
}
