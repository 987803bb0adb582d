package main

import "github.com/tayloree/shelfhelp/cmd"

func main() {
	cmd.Execute()
}
