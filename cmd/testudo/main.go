package main

import "github.com/soc-tools/testudo/internal/cli"

func main() {
	cli.Execute()
}
