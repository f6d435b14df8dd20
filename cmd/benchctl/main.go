package main

import (
	"fmt"
	"os"

	"inferd/internal/bench"
)

func main() {
	cfg, err := bench.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchctl: %v\n", err)
		os.Exit(1)
	}
	if err := bench.BuildRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchctl: %v\n", err)
		os.Exit(1)
	}
}
