package main

import (
	"os"

	"github.com/happycastle114/oh-my-openclaw-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
