package main

import "github.com/pders01/vault/cmd"

func main() {
	cmd.Execute()
}
