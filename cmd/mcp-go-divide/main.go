package main

import (
	"os"

	"github.com/sunfmin/mcp-go-divide/cmd/mcp-go-divide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
