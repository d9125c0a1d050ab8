package main

import (
	"os"

	"fortio.org/colorwheel/colorwheel/cli"
)

func main() {
	os.Exit(cli.Main())
}
