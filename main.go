package main

import (
	"os"

	"github.com/scan-io-git/lawbook/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
