package main

import "github.com/Alturino/computer-store/cmd"

func main() {
	cmd.Start()
}
