package main

import "github.com/mblarsen/trans-selection/cmd"

func main() {
	cmd.Execute()
}
