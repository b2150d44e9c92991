package main

import "github.com/oshokin/ide-packager/cmd/ide-packager/cmd"

func main() {
	cmd.Execute()
}
