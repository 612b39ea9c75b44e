package main

import "github.com/emrgen/wiki/cmd"

func main() {
	cmd.Execute()
}
