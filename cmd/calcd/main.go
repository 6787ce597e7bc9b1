package main

import "github.com/smartcalc/calcd/cmd"

func main() {
	cmd.Execute()
}
