package main

import "github.com/alexiusacademia/csiapi/cmd"

func main() {
	cmd.Execute()
}
