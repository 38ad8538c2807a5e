package main

import "github.com/cluttrdev/sfe/cmd"

func main() {
	cmd.Execute()
}
