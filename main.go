package main

import "github.com/bgraf/routetracker/cmd"

func main() {
	cmd.Execute()
}
