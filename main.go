package main

import "github.com/acl-api/cmd"

func main() {
	cmd.Execute()
}
