package main

import (
	"os"

	"github.com/Tom7834/Bookstore-Patterns/cmd/bookstore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
