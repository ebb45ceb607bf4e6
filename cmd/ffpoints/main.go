package main

import "github.com/pfrederiksen/ffpoints/internal/cli"

func main() {
	cli.Execute()
}
