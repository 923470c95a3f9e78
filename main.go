package main

import "renoboard/cmd"

func main() {
	cmd.Execute()
}
