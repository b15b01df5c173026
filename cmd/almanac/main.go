package main

import "almanac/cmd/almanac/cmd"

func main() {
	cmd.Execute()
}
