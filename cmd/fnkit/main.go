package main

import "github.com/KasperOmsK/fnkit/internal/cli"

func main() {
	cli.Execute()
}
