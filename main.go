package main

import (
	"github.com/valentinburk/dnalab/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
