package main

import "github.com/tkessler/goinsul/cmd"

func main() {
	cmd.Execute()
}
