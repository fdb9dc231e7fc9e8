package main

import "github.com/vietddude/ranksync/internal/cli"

func main() {
	cli.Execute()
}
