// Package main is the gedtree CLI entry point.
package main

import "github.com/lineagelabs/gedtree/internal/cli"

func main() {
	cli.Execute()
}
