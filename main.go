package main

import "github.com/papapumpkin/chronon/cmd"

func main() {
	cmd.Execute()
}
