package main

import "github.com/gnames/gnomen/gnomen/cmd"

func main() {
	cmd.Execute()
}
