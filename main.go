package main

import "github.com/Tom-Neverwinter/pinlib/cmd"

func main() {
	cmd.Execute()
}
