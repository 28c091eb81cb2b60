package main

import (
	"fmt"
	"os"

	"github.com/lukaszgryglicki/scenegen/internal/scenegen"
)

func main() {
	scenegen.Debug = os.Getenv("DEBUG") != ""

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := scenegen.Run(cfg, os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
