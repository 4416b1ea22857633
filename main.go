package main

import "github.com/xvierd/pomokids/cmd"

func main() {
	cmd.Execute()
}
