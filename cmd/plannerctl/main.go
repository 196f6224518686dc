package main

import "content-planner/cmd/plannerctl/commands"

func main() {
	commands.Execute()
}
