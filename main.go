package main

import "github.com/alexiusacademia/gotendon/cmd"

func main() {
	cmd.Execute()
}
