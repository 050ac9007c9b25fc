package main

import "github.com/Amityadav08/SLVNK-Frontend/cmd/slvnk/cmd"

func main() {
	cmd.Execute()
}
