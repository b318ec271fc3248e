package main

import "github.com/0xalexb/hjarta-apidoc/internal/cli"

func main() {
	cli.Execute()
}
