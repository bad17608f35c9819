package main

import "github.com/nfrund/homepage/cmd/homepage/cmd"

func main() {
	cmd.Execute()
}
