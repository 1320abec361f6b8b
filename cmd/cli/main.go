package main

import (
	"github.com/mchmarny/flopctl/pkg/cli"
)

func main() {
	cli.Execute()
}
