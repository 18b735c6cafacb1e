package main

import "github.com/retrofmt/go-t64/cmd"

func main() {
	cmd.Execute()
}
