package main

import "github.com/alexiusacademia/gocable/cmd"

func main() {
	cmd.Execute()
}
