package main

import "github.com/rustyeddy/stocktracker/internal/cli"

func main() {
	cli.Execute()
}
