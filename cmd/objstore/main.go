package main

import "github.com/serverlessresearch/objstore/cmd"

func main() {
	cmd.Execute()
}
