package main

import "github.com/alexiusacademia/golift/cmd"

func main() {
	cmd.Execute()
}
