package main

import (
	"os"

	"github.com/toolbridge/toolbridge/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
