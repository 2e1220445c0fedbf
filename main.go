package main

import "github.com/analisai/analisai/cmd"

func main() {
	cmd.Execute()
}
