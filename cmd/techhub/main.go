package main

import "github.com/nfrund/techhub/cmd/techhub/cmd"

func main() {
	cmd.Execute()
}
