package main

import "github.com/notargets/gofel/cmd"

func main() {
	cmd.Execute()
}
