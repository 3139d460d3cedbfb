package main

import "github.com/maintainhq/maintain/cmd"

func main() {
	cmd.Execute()
}
