package main

import "overlay/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
