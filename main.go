package main

import "taskforge/internal/cli"

func main() {
	cli.Execute()
}
