package main

import "growth-tracker/internal/cli"

func main() {
	cli.Execute()
}
