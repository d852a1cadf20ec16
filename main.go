package main

import "shadowme/cli"

func main() {
	cli.Execute()
}
