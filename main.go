package main

import "github.com/diogo/promptrelay/internal/commands"

func main() {
	commands.Execute()
}
