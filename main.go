package main

import "github.com/mj1618/macos-haptics/cmd"

func main() {
	cmd.Execute()
}
