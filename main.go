package main

import "github.com/garagehq/garage/cmd"

func main() {
	cmd.Execute()
}
