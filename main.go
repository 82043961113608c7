package main

import "static-launcher/cmd"

func main() {
	cmd.Execute()
}
