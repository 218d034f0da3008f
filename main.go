package main

import "github.com/shsift/shsift/cmd"

func main() {
	cmd.Execute()
}
