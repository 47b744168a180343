package main

import (
	"os"

	"github.com/AnuSaha545/ai-study-planner-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
