package main

import "atest-finder/internal/cli"

func main() {
	cli.Execute()
}
