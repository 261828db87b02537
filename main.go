package main

import "taskpro.com/taskpro/cmd"

func main() {
	cmd.Execute()
}
