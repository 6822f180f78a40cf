package main

import "github.com/dotcommander/postlint/cmd"

func main() {
	cmd.Execute()
}
