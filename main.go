package main

import "github.com/notargets/advdiff/cmd"

func main() {
	cmd.Execute()
}
