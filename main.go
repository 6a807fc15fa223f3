package main

import "github.com/hafiztri/comic-shelf/cmd"

func main() {
	cmd.Execute()
}
