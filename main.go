package main

import "github.com/kamal-hamza/updeck/cmd"

func main() {
	cmd.Execute()
}
