package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	cmd := newRootCmd(&options{now: time.Now})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
