package main

import "github.com/KaramelBytes/dataroom-cli/cmd"

func main() {
	cmd.Execute()
}
