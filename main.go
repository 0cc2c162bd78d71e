package main

import "github.com/openclaw/radar/cmd"

func main() {
	cmd.Execute()
}
