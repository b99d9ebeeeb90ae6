package main

import "github.com/mkrenn/courseflow/cmd"

func main() {
	cmd.Execute()
}
