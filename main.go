package main

import "github.com/langhost/langhost/cmd"

func main() {
	cmd.Execute()
}
