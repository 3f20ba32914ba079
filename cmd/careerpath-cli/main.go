package main

import "careerpath/cmd/careerpath-cli/cmd"

func main() {
	cmd.Execute()
}
