package main

import (
	"github.com/Quan631/PBL-6/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
