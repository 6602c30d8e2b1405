package main

import "github.com/tagdex/tagdex/cmd"

func main() {
	cmd.Execute()
}
