package main

import "github.com/huddleapp/huddle/cmd/huddled/cmd"

func main() {
	cmd.Execute()
}
