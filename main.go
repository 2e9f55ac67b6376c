package main

import "github.com/nathanhack/infochannel/cmd"

func main() {
	cmd.Execute()
}
