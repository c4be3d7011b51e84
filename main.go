package main

import (
	"os"

	"github.com/cspscan/cspscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
