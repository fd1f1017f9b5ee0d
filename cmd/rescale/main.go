package main

import (
	"github.com/c9s/rescale/pkg/cmd"
)

func main() {
	cmd.Execute()
}
