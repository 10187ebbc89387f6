package main

import (
	"os"

	"github.com/tsamuels/livewire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
