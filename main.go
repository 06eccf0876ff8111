package main

import "github.com/jsphweid/aleatoric/cmd"

func main() {
	cmd.Execute()
}
