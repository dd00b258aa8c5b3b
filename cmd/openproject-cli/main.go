package main

import "openproject/cmd/openproject-cli/cmd"

func main() {
	cmd.Execute()
}
