package main

import "github.com/biolink/biolink-model-toolkit/internal/cli"

func main() {
	cli.Execute()
}
