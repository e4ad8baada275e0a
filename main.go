package main

import (
	"github.com/saymynamenow/lossantos-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
