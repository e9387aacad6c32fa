package main

import "github.com/konvent-build/konvent/internal/command"

func main() {
	command.Execute()
}
