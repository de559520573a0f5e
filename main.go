package main

import "github.com/raeve/gameboot/cmd"

func main() {
	cmd.Execute()
}
