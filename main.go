package main

import "github.com/rook-computer/watchface/cmd"

func main() {
	cmd.Execute()
}
